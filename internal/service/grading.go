// internal/service/grading.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mathdrill/backend/internal/answer"
	"github.com/mathdrill/backend/internal/domain/automation"
	"github.com/mathdrill/backend/internal/domain/corpus"
	"github.com/mathdrill/backend/internal/domain/problem"
	"github.com/mathdrill/backend/internal/domain/progress"
	"github.com/mathdrill/backend/internal/domain/scoring"
	"github.com/mathdrill/backend/internal/domain/settings"
	"github.com/mathdrill/backend/internal/grader"
	"github.com/mathdrill/backend/internal/store"
)

var (
	ErrUnknownProblem = errors.New("unknown problem")
	ErrUnknownSection = errors.New("unknown section")
)

// GradingService applies the attempt state machine to stored problem states.
// Every transition on a key runs load, migrate, transition and save under
// that key's lock, so concurrent requests for one problem never lose an
// update. Different keys proceed in parallel.
type GradingService struct {
	corpus   *corpus.Corpus
	store    store.Store
	grader   grader.Grader
	metrics  *Metrics
	logger   *slog.Logger
	defaults settings.Settings

	locks *keyLocks

	settingsMu sync.RWMutex
	settings   *settings.Settings // cached once loaded
}

// NewGradingService creates a GradingService. defaults are the settings used
// until the learner saves their own. metrics may be nil.
func NewGradingService(c *corpus.Corpus, s store.Store, g grader.Grader, defaults settings.Settings, metrics *Metrics, logger *slog.Logger) *GradingService {
	return &GradingService{
		corpus:   c,
		store:    s,
		grader:   g,
		metrics:  metrics,
		logger:   logger,
		defaults: defaults,
		locks:    newKeyLocks(),
	}
}

// Corpus returns the problem set the service grades against.
func (gs *GradingService) Corpus() *corpus.Corpus {
	return gs.corpus
}

// StepView is one walkthrough step as the learner sees it. Text is only
// filled in once the step has been revealed.
type StepView struct {
	Index     int     `json:"index"`
	Cost      float64 `json:"cost"`
	Text      string  `json:"text,omitempty"`
	Revealed  bool    `json:"revealed"`
	UserTyped *string `json:"user_typed,omitempty"`
}

// Snapshot is a problem's state plus everything derived from it.
type Snapshot struct {
	Key         string                `json:"key"`
	PartLabels  []string              `json:"part_labels"`
	State       progress.ProblemState `json:"state"`
	RetriesLeft int                   `json:"retries_left"`
	Score       *float64              `json:"score"`
	Hint        string                `json:"hint,omitempty"`
	Steps       []StepView            `json:"steps"`
	CurrentStep int                   `json:"current_step"`
	Answers     []string              `json:"answers,omitempty"` // typed canonical answers, once the cycle has ended
	Changed     bool                  `json:"changed"`
}

// ============================================================================
// Transitions
// ============================================================================

// State returns the migrated state of a problem. A migration that changed
// the stored state is written back.
func (gs *GradingService) State(ctx context.Context, key string) (Snapshot, error) {
	return gs.apply(ctx, key, "migrate", func(_ *problem.Problem, st progress.ProblemState, _ settings.Settings) (progress.ProblemState, bool) {
		return st, false
	})
}

// Submit grades a submission for key.
func (gs *GradingService) Submit(ctx context.Context, key string, inputs []string) (Snapshot, error) {
	snap, err := gs.apply(ctx, key, "submit", func(p *problem.Problem, st progress.ProblemState, cfg settings.Settings) (progress.ProblemState, bool) {
		grade := func(in []string) []bool {
			defer gs.metrics.graded(time.Now())
			return gs.grader.Grade(in, p.Parts(), p.Text)
		}
		return progress.Submit(st, inputs, len(p.Answer), cfg.MaxRetries, grade)
	})
	if err == nil && snap.Changed {
		gs.metrics.submitted(snap.State.Status.String())
	}
	return snap, err
}

// Reset starts a new attempt cycle for key.
func (gs *GradingService) Reset(ctx context.Context, key string) (Snapshot, error) {
	snap, err := gs.apply(ctx, key, "reset", func(p *problem.Problem, st progress.ProblemState, _ settings.Settings) (progress.ProblemState, bool) {
		return progress.Reset(st, len(p.Answer))
	})
	if err == nil {
		gs.metrics.reset(1)
	}
	return snap, err
}

// Dispute accepts one part of one history entry as correct.
func (gs *GradingService) Dispute(ctx context.Context, key string, historyIndex, partIndex int) (Snapshot, error) {
	snap, err := gs.apply(ctx, key, "dispute", func(_ *problem.Problem, st progress.ProblemState, _ settings.Settings) (progress.ProblemState, bool) {
		return progress.Dispute(st, historyIndex, partIndex)
	})
	if err == nil && snap.Changed {
		gs.metrics.disputed()
		gs.logger.Info("answer disputed",
			"problem_key", key,
			"history_index", historyIndex,
			"part_index", partIndex,
			"attempts", snap.State.Attempts,
		)
	}
	return snap, err
}

// UseHint marks the hint of key as used.
func (gs *GradingService) UseHint(ctx context.Context, key string) (Snapshot, error) {
	snap, err := gs.apply(ctx, key, "hint", func(_ *problem.Problem, st progress.ProblemState, _ settings.Settings) (progress.ProblemState, bool) {
		return progress.UseHint(st)
	})
	if err == nil && snap.Changed {
		gs.metrics.assisted("hint")
	}
	return snap, err
}

// RevealStep reveals the current walkthrough step of key.
func (gs *GradingService) RevealStep(ctx context.Context, key string) (Snapshot, error) {
	snap, err := gs.apply(ctx, key, "reveal_step", func(p *problem.Problem, st progress.ProblemState, _ settings.Settings) (progress.ProblemState, bool) {
		return progress.RevealStep(st, automation.For(p))
	})
	if err == nil && snap.Changed {
		gs.metrics.assisted("reveal_step")
	}
	return snap, err
}

// TypeStep records the learner's own working for the current step of key.
func (gs *GradingService) TypeStep(ctx context.Context, key, text string) (Snapshot, error) {
	snap, err := gs.apply(ctx, key, "type_step", func(p *problem.Problem, st progress.ProblemState, _ settings.Settings) (progress.ProblemState, bool) {
		return progress.TypeStep(st, automation.For(p), text)
	})
	if err == nil && snap.Changed {
		gs.metrics.assisted("type_step")
	}
	return snap, err
}

// PostAnswer charges the post-answer deduction and returns the canonical
// answers of key in typed form, ready to fill into the answer boxes.
func (gs *GradingService) PostAnswer(ctx context.Context, key string) (Snapshot, []string, error) {
	snap, err := gs.apply(ctx, key, "post_answer", func(p *problem.Problem, st progress.ProblemState, _ settings.Settings) (progress.ProblemState, bool) {
		return progress.PostAnswer(st, automation.For(p))
	})
	if err != nil {
		return Snapshot{}, nil, err
	}
	if !snap.Changed {
		return snap, nil, nil
	}
	gs.metrics.assisted("post_answer")

	p, _ := gs.corpus.Problem(key)
	return snap, typedAnswers(p), nil
}

// ResetProblems clears every stored trace of the given problems, history
// included.
func (gs *GradingService) ResetProblems(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if _, err := gs.problem(key); err != nil {
			return err
		}
	}

	unlock := gs.locks.lockAll(keys)
	defer unlock()

	if err := gs.store.DeleteProblems(ctx, keys); err != nil {
		gs.logger.Error("failed to clear problems", "count", len(keys), "error", err)
		return fmt.Errorf("clear problems: %w", err)
	}
	gs.metrics.reset(len(keys))
	gs.logger.Info("problems cleared", "count", len(keys))
	return nil
}

// ResetSection clears every problem of a section, edge and corner groups
// included.
func (gs *GradingService) ResetSection(ctx context.Context, sectionID string) error {
	s, ok := gs.corpus.Section(sectionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	var keys []string
	for _, g := range s.Groups(true, true) {
		keys = append(keys, g.Keys()...)
	}
	return gs.ResetProblems(ctx, keys)
}

type transitionFunc func(p *problem.Problem, st progress.ProblemState, cfg settings.Settings) (progress.ProblemState, bool)

func (gs *GradingService) apply(ctx context.Context, key, op string, fn transitionFunc) (Snapshot, error) {
	p, err := gs.problem(key)
	if err != nil {
		return Snapshot{}, err
	}
	cfg, err := gs.Settings(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	unlock := gs.locks.lock(key)
	defer unlock()

	st, migrated, err := gs.load(ctx, p)
	if err != nil {
		return Snapshot{}, err
	}

	next, changed := fn(p, st, cfg)
	if changed || migrated {
		if err := gs.store.PutProblem(ctx, key, next); err != nil {
			gs.logger.Error("failed to save problem state", "problem_key", key, "op", op, "error", err)
			return Snapshot{}, fmt.Errorf("save problem %s: %w", key, err)
		}
	}

	gs.logger.Debug("transition applied",
		"problem_key", key,
		"op", op,
		"changed", changed,
		"status", next.Status.String(),
		"attempts", next.Attempts,
	)
	return gs.snapshot(p, next, changed, cfg), nil
}

func (gs *GradingService) problem(key string) (*problem.Problem, error) {
	p, ok := gs.corpus.Problem(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProblem, key)
	}
	return p, nil
}

// load returns the migrated state of p and whether migration changed what
// was stored. A problem never saved starts fresh. The caller holds the key
// lock.
func (gs *GradingService) load(ctx context.Context, p *problem.Problem) (progress.ProblemState, bool, error) {
	st, err := gs.store.GetProblem(ctx, p.Key)
	if errors.Is(err, store.ErrNotFound) {
		return progress.New(len(p.Answer)), false, nil
	}
	if err != nil {
		gs.logger.Error("failed to load problem state", "problem_key", p.Key, "error", err)
		return progress.ProblemState{}, false, fmt.Errorf("load problem %s: %w", p.Key, err)
	}
	st, migrated := progress.Migrate(st, len(p.Answer))
	return st, migrated, nil
}

func (gs *GradingService) snapshot(p *problem.Problem, st progress.ProblemState, changed bool, cfg settings.Settings) Snapshot {
	w := automation.For(p)
	snap := Snapshot{
		Key:         p.Key,
		PartLabels:  make([]string, len(p.Answer)),
		State:       st,
		RetriesLeft: st.RetriesLeft(cfg.MaxRetries),
		Steps:       make([]StepView, len(w.Steps)),
		CurrentStep: w.Current(st.AutomationStepStates),
		Changed:     changed,
	}
	for i, part := range p.Answer {
		snap.PartLabels[i] = part.Label
	}
	if score, ok := scoring.ProblemScore(st, cfg.CorrectionScore); ok {
		snap.Score = &score
	}
	if st.HintUsed {
		snap.Hint = p.Hint
	}
	for i := range w.Steps {
		view := StepView{Index: i, Cost: w.Costs[i]}
		if i < len(st.AutomationStepStates) {
			ss := st.AutomationStepStates[i]
			view.Revealed = ss.Revealed
			view.UserTyped = ss.UserTyped
		}
		if view.Revealed {
			view.Text = w.Steps[i]
		}
		snap.Steps[i] = view
	}
	if st.Status.Terminal() {
		snap.Answers = typedAnswers(p)
	}
	return snap
}

func typedAnswers(p *problem.Problem) []string {
	out := make([]string, len(p.Answer))
	for i, part := range p.Answer {
		out[i] = answer.Typed(part.Value)
	}
	return out
}
