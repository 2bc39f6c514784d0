package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/mathdrill/backend/internal/domain/progress"
	"github.com/mathdrill/backend/internal/domain/settings"
)

var (
	problemsBucket = []byte("problems")
	settingsBucket = []byte("settings")
	reviewedBucket = []byte("reviewed")

	settingsKey = []byte(settingsName)
)

// BoltStore keeps progress in a single-file bbolt database, one bucket per
// record kind.
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

// OpenBolt opens (and creates if needed) the bbolt database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	s := &BoltStore{db: db}
	if err := s.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *BoltStore) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{problemsBucket, settingsBucket, reviewedBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func (s *BoltStore) GetProblem(ctx context.Context, key string) (progress.ProblemState, error) {
	if err := ctx.Err(); err != nil {
		return progress.ProblemState{}, err
	}

	var st progress.ProblemState
	err := s.db.View(func(tx *bbolt.Tx) error {
		payload := tx.Bucket(problemsBucket).Get([]byte(key))
		if payload == nil {
			return ErrNotFound
		}
		var err error
		st, err = decodeState(key, payload)
		return err
	})
	return st, err
}

func (s *BoltStore) PutProblem(ctx context.Context, key string, state progress.ProblemState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal problem %s: %w", key, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(problemsBucket).Put([]byte(key), payload)
	})
}

func (s *BoltStore) DeleteProblems(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(problemsBucket)
		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("delete problem %s: %w", key, err)
			}
		}
		return nil
	})
}

func (s *BoltStore) ListProblems(ctx context.Context) (map[string]progress.ProblemState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	states := make(map[string]progress.ProblemState)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(problemsBucket).ForEach(func(k, v []byte) error {
			st, err := decodeState(string(k), v)
			if err != nil {
				return err
			}
			states[string(k)] = st
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return states, nil
}

func (s *BoltStore) GetSettings(ctx context.Context) (settings.Settings, error) {
	if err := ctx.Err(); err != nil {
		return settings.Settings{}, err
	}

	var st settings.Settings
	err := s.db.View(func(tx *bbolt.Tx) error {
		payload := tx.Bucket(settingsBucket).Get(settingsKey)
		if payload == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(payload, &st); err != nil {
			return fmt.Errorf("unmarshal settings: %w", err)
		}
		return nil
	})
	return st, err
}

func (s *BoltStore) PutSettings(ctx context.Context, st settings.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(settingsBucket).Put(settingsKey, payload)
	})
}

func (s *BoltStore) SetReviewed(ctx context.Context, sectionID string, reviewed bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value := []byte{0}
	if reviewed {
		value[0] = 1
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(reviewedBucket).Put([]byte(sectionID), value)
	})
}

func (s *BoltStore) ListReviewed(ctx context.Context) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reviewed := make(map[string]bool)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(reviewedBucket).ForEach(func(k, v []byte) error {
			reviewed[string(k)] = len(v) > 0 && v[0] == 1
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}
