package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mathdrill/backend/internal/domain/corpus"
	"github.com/mathdrill/backend/internal/domain/progress"
	"github.com/mathdrill/backend/internal/domain/scoring"
	"github.com/mathdrill/backend/internal/domain/settings"
	"github.com/mathdrill/backend/internal/store"
)

// ============================================================================
// Settings
// ============================================================================

// Settings returns the learner's settings, or the defaults when none were
// saved.
func (gs *GradingService) Settings(ctx context.Context) (settings.Settings, error) {
	gs.settingsMu.RLock()
	cached := gs.settings
	gs.settingsMu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	gs.settingsMu.Lock()
	defer gs.settingsMu.Unlock()
	if gs.settings != nil {
		return *gs.settings, nil
	}

	s, err := gs.store.GetSettings(ctx)
	if errors.Is(err, store.ErrNotFound) {
		s = gs.defaults
	} else if err != nil {
		return settings.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	gs.settings = &s
	return s, nil
}

// UpdateSettings validates and saves new settings. They apply to the next
// operation.
func (gs *GradingService) UpdateSettings(ctx context.Context, s settings.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	gs.settingsMu.Lock()
	defer gs.settingsMu.Unlock()
	if err := gs.store.PutSettings(ctx, s); err != nil {
		gs.logger.Error("failed to save settings", "error", err)
		return fmt.Errorf("save settings: %w", err)
	}
	gs.settings = &s
	gs.logger.Info("settings updated",
		"max_retries", s.MaxRetries,
		"correction_score", s.CorrectionScore.String(),
		"show_edge_cases", s.ShowEdgeCases,
		"show_corner_cases", s.ShowCornerCases,
	)
	return nil
}

// ============================================================================
// Reviewed sections
// ============================================================================

func (gs *GradingService) SetReviewed(ctx context.Context, sectionID string, reviewed bool) error {
	if _, ok := gs.corpus.Section(sectionID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	if err := gs.store.SetReviewed(ctx, sectionID, reviewed); err != nil {
		gs.logger.Error("failed to save reviewed flag", "section_id", sectionID, "error", err)
		return fmt.Errorf("save reviewed %s: %w", sectionID, err)
	}
	return nil
}

// ============================================================================
// Reports
// ============================================================================

// Report scores the given sections, or every section when ids is empty.
func (gs *GradingService) Report(ctx context.Context, ids []string) (scoring.Report, error) {
	sections, err := gs.sections(ids)
	if err != nil {
		return scoring.Report{}, err
	}
	states, opts, err := gs.reportInputs(ctx)
	if err != nil {
		return scoring.Report{}, err
	}
	return scoring.Build(sections, states, opts), nil
}

// Sections summarizes every section without per-group detail.
func (gs *GradingService) Sections(ctx context.Context) ([]scoring.SectionReport, error) {
	r, err := gs.Report(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range r.Sections {
		r.Sections[i].Groups = nil
	}
	return r.Sections, nil
}

// Section reports on one section group by group.
func (gs *GradingService) Section(ctx context.Context, id string) (scoring.SectionReport, error) {
	sections, err := gs.sections([]string{id})
	if err != nil {
		return scoring.SectionReport{}, err
	}
	states, opts, err := gs.reportInputs(ctx)
	if err != nil {
		return scoring.SectionReport{}, err
	}
	return scoring.BuildSection(sections[0], states, opts), nil
}

func (gs *GradingService) sections(ids []string) ([]*corpus.Section, error) {
	if len(ids) == 0 {
		return gs.corpus.Sections, nil
	}
	out := make([]*corpus.Section, 0, len(ids))
	for _, id := range ids {
		s, ok := gs.corpus.Section(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, id)
		}
		out = append(out, s)
	}
	return out, nil
}

// reportInputs loads every stored state, migrated, along with the report
// options derived from the current settings.
func (gs *GradingService) reportInputs(ctx context.Context) (map[string]progress.ProblemState, scoring.Options, error) {
	cfg, err := gs.Settings(ctx)
	if err != nil {
		return nil, scoring.Options{}, err
	}
	reviewed, err := gs.store.ListReviewed(ctx)
	if err != nil {
		return nil, scoring.Options{}, fmt.Errorf("list reviewed: %w", err)
	}
	states, err := gs.store.ListProblems(ctx)
	if err != nil {
		return nil, scoring.Options{}, fmt.Errorf("list problems: %w", err)
	}
	for key, st := range states {
		if p, ok := gs.corpus.Problem(key); ok {
			states[key], _ = progress.Migrate(st, len(p.Answer))
		}
	}
	return states, cfg.ReportOptions(reviewed), nil
}
