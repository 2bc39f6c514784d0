package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/mathdrill/backend/internal/domain/progress"
	"github.com/mathdrill/backend/internal/domain/settings"
)

// Statements are written with ? placeholders and rewritten for postgres.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS problem_states (
    problem_key TEXT PRIMARY KEY,
    payload TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS settings (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS reviewed_sections (
    section_id TEXT PRIMARY KEY,
    reviewed BOOLEAN NOT NULL
)`,
}

const settingsName = "settings"

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// SQLStore keeps each problem state as a JSON document in a relational
// table. It runs on SQLite or Postgres.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

var _ Store = (*SQLStore)(nil)

// NewSQLite opens (and creates if needed) a SQLite database file.
func NewSQLite(dbPath string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// One connection serializes writers and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)
	return newSQLStore(db, dialectSQLite)
}

// NewPostgres connects to Postgres through the pgx driver.
func NewPostgres(dsn string) (*SQLStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return newSQLStore(db, dialectPostgres)
}

func newSQLStore(db *sql.DB, d dialect) (*SQLStore, error) {
	s := &SQLStore{db: db, dialect: d}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return s, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Problem states
// ============================================================================

func (s *SQLStore) GetProblem(ctx context.Context, key string) (progress.ProblemState, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT payload FROM problem_states WHERE problem_key = ?"), key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.ProblemState{}, ErrNotFound
	}
	if err != nil {
		return progress.ProblemState{}, err
	}
	return decodeState(key, []byte(payload))
}

func (s *SQLStore) PutProblem(ctx context.Context, key string, state progress.ProblemState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal problem %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO problem_states (problem_key, payload) VALUES (?, ?)
		ON CONFLICT (problem_key) DO UPDATE SET payload = excluded.payload`),
		key, string(payload),
	)
	return err
}

func (s *SQLStore) DeleteProblems(ctx context.Context, keys []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.rebind("DELETE FROM problem_states WHERE problem_key = ?"))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, key := range keys {
		if _, err := stmt.ExecContext(ctx, key); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLStore) ListProblems(ctx context.Context) (map[string]progress.ProblemState, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT problem_key, payload FROM problem_states")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make(map[string]progress.ProblemState)
	for rows.Next() {
		var key, payload string
		if err := rows.Scan(&key, &payload); err != nil {
			return nil, err
		}
		st, err := decodeState(key, []byte(payload))
		if err != nil {
			return nil, err
		}
		states[key] = st
	}
	return states, rows.Err()
}

// ============================================================================
// Settings
// ============================================================================

func (s *SQLStore) GetSettings(ctx context.Context) (settings.Settings, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT value FROM settings WHERE name = ?"), settingsName,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return settings.Settings{}, ErrNotFound
	}
	if err != nil {
		return settings.Settings{}, err
	}

	var st settings.Settings
	if err := json.Unmarshal([]byte(value), &st); err != nil {
		return settings.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return st, nil
}

func (s *SQLStore) PutSettings(ctx context.Context, st settings.Settings) error {
	value, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO settings (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value`),
		settingsName, string(value),
	)
	return err
}

// ============================================================================
// Reviewed sections
// ============================================================================

func (s *SQLStore) SetReviewed(ctx context.Context, sectionID string, reviewed bool) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO reviewed_sections (section_id, reviewed) VALUES (?, ?)
		ON CONFLICT (section_id) DO UPDATE SET reviewed = excluded.reviewed`),
		sectionID, reviewed,
	)
	return err
}

func (s *SQLStore) ListReviewed(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT section_id, reviewed FROM reviewed_sections")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviewed := make(map[string]bool)
	for rows.Next() {
		var id string
		var r bool
		if err := rows.Scan(&id, &r); err != nil {
			return nil, err
		}
		reviewed[id] = r
	}
	return reviewed, rows.Err()
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func decodeState(key string, payload []byte) (progress.ProblemState, error) {
	var st progress.ProblemState
	if err := json.Unmarshal(payload, &st); err != nil {
		return progress.ProblemState{}, fmt.Errorf("unmarshal problem %s: %w", key, err)
	}
	return st, nil
}
