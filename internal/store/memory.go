package store

import (
	"context"
	"sync"

	"github.com/mathdrill/backend/internal/domain/progress"
	"github.com/mathdrill/backend/internal/domain/settings"
)

// MemoryStore is a process-local Store. Nothing survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	problems map[string]progress.ProblemState
	settings *settings.Settings
	reviewed map[string]bool
}

var _ Store = (*MemoryStore)(nil)

func NewMemory() *MemoryStore {
	return &MemoryStore{
		problems: make(map[string]progress.ProblemState),
		reviewed: make(map[string]bool),
	}
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) GetProblem(ctx context.Context, key string) (progress.ProblemState, error) {
	if err := ctx.Err(); err != nil {
		return progress.ProblemState{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.problems[key]
	if !ok {
		return progress.ProblemState{}, ErrNotFound
	}
	return st.Clone(), nil
}

func (m *MemoryStore) PutProblem(ctx context.Context, key string, state progress.ProblemState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.problems[key] = state.Clone()
	return nil
}

func (m *MemoryStore) DeleteProblems(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.problems, key)
	}
	return nil
}

func (m *MemoryStore) ListProblems(ctx context.Context) (map[string]progress.ProblemState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]progress.ProblemState, len(m.problems))
	for k, st := range m.problems {
		out[k] = st.Clone()
	}
	return out, nil
}

func (m *MemoryStore) GetSettings(ctx context.Context) (settings.Settings, error) {
	if err := ctx.Err(); err != nil {
		return settings.Settings{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return settings.Settings{}, ErrNotFound
	}
	return *m.settings, nil
}

func (m *MemoryStore) PutSettings(ctx context.Context, s settings.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = &s
	return nil
}

func (m *MemoryStore) SetReviewed(ctx context.Context, sectionID string, reviewed bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reviewed[sectionID] = reviewed
	return nil
}

func (m *MemoryStore) ListReviewed(ctx context.Context) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]bool, len(m.reviewed))
	for k, v := range m.reviewed {
		out[k] = v
	}
	return out, nil
}
