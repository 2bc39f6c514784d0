package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mathdrill/backend/internal/domain/progress"
	"github.com/mathdrill/backend/internal/domain/settings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUnknownDriver = errors.New("unknown store driver")
)

// Store is the durable key-value home of a learner's progress. Every call is
// durable on return.
type Store interface {
	// GetProblem returns ErrNotFound for a problem that was never saved or
	// was deleted.
	GetProblem(ctx context.Context, key string) (progress.ProblemState, error)
	PutProblem(ctx context.Context, key string, state progress.ProblemState) error
	// DeleteProblems removes the given keys; missing keys are ignored.
	DeleteProblems(ctx context.Context, keys []string) error
	ListProblems(ctx context.Context) (map[string]progress.ProblemState, error)

	// GetSettings returns ErrNotFound until settings are first saved.
	GetSettings(ctx context.Context) (settings.Settings, error)
	PutSettings(ctx context.Context, s settings.Settings) error

	SetReviewed(ctx context.Context, sectionID string, reviewed bool) error
	ListReviewed(ctx context.Context) (map[string]bool, error)

	Close() error
}

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBolt     = "bbolt"
	DriverMemory   = "memory"
)

// Open opens the store backend named by driver at dsn.
func Open(driver, dsn string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch driver {
	case DriverSQLite:
		s, err = NewSQLite(dsn)
	case DriverPostgres:
		s, err = NewPostgres(dsn)
	case DriverBolt:
		s, err = OpenBolt(dsn)
	case DriverMemory:
		s = NewMemory()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
