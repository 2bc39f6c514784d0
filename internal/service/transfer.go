package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/mathdrill/backend/internal/domain/progress"
	"github.com/mathdrill/backend/internal/domain/settings"
)

// ExportVersion is the version written to, and required of, progress
// documents.
const ExportVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported export version")

// Export is a portable copy of a learner's progress. Its field names follow
// the browser storage layout so older saves import unchanged.
type Export struct {
	Version    int                              `json:"version"`
	ExportedAt time.Time                        `json:"exportedAt"`
	Settings   *settings.Settings               `json:"settings,omitempty"`
	Reviewed   map[string]bool                  `json:"reviewed"`
	Problems   map[string]progress.ProblemState `json:"problems"`
}

// ImportResult reports what an import wrote. Skipped lists problem keys and
// section ids the corpus does not know.
type ImportResult struct {
	Problems int      `json:"problems"`
	Reviewed int      `json:"reviewed"`
	Settings bool     `json:"settings"`
	Skipped  []string `json:"skipped"`
}

// Export collects everything stored for the learner.
func (gs *GradingService) Export(ctx context.Context) (Export, error) {
	cfg, err := gs.Settings(ctx)
	if err != nil {
		return Export{}, err
	}
	reviewed, err := gs.store.ListReviewed(ctx)
	if err != nil {
		return Export{}, fmt.Errorf("list reviewed: %w", err)
	}
	problems, err := gs.store.ListProblems(ctx)
	if err != nil {
		return Export{}, fmt.Errorf("list problems: %w", err)
	}

	return Export{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		Settings:   &cfg,
		Reviewed:   reviewed,
		Problems:   problems,
	}, nil
}

// Import writes an exported document through the store. Each problem state
// is migrated against the current corpus before it is saved; entries the
// corpus does not know are skipped.
func (gs *GradingService) Import(ctx context.Context, e Export) (ImportResult, error) {
	if e.Version != ExportVersion {
		return ImportResult{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, e.Version)
	}
	if e.Settings != nil {
		if err := e.Settings.Validate(); err != nil {
			return ImportResult{}, err
		}
	}

	res := ImportResult{Skipped: []string{}}
	if e.Settings != nil {
		if err := gs.UpdateSettings(ctx, *e.Settings); err != nil {
			return res, err
		}
		res.Settings = true
	}

	for id, reviewed := range e.Reviewed {
		if _, ok := gs.corpus.Section(id); !ok {
			res.Skipped = append(res.Skipped, id)
			continue
		}
		if err := gs.SetReviewed(ctx, id, reviewed); err != nil {
			return res, err
		}
		res.Reviewed++
	}

	for key, st := range e.Problems {
		p, ok := gs.corpus.Problem(key)
		if !ok {
			res.Skipped = append(res.Skipped, key)
			continue
		}
		migrated, _ := progress.Migrate(st, len(p.Answer))

		unlock := gs.locks.lock(key)
		err := gs.store.PutProblem(ctx, key, migrated)
		unlock()
		if err != nil {
			gs.logger.Error("failed to import problem state", "problem_key", key, "error", err)
			return res, fmt.Errorf("import problem %s: %w", key, err)
		}
		res.Problems++
	}
	slices.Sort(res.Skipped)

	gs.logger.Info("progress imported",
		"problems", res.Problems,
		"reviewed", res.Reviewed,
		"skipped", len(res.Skipped),
	)
	return res, nil
}
