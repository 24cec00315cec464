package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dan9191/finplan-service/internal/models"
)

const schema = `
	CREATE SCHEMA IF NOT EXISTS planner;
	CREATE TABLE IF NOT EXISTS planner.wizard_sessions (
		id         TEXT PRIMARY KEY,
		state      JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS wizard_sessions_expires_at_idx ON planner.wizard_sessions (expires_at);`

// PostgresStore provides database operations for wizard sessions
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore initializes a new store on an open database handle
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the sessions table when it does not exist
func (r *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create session schema: %w", err)
	}
	return nil
}

// Get retrieves a live session by id
func (r *PostgresStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s := &models.Session{}
	var state []byte
	query := `
		SELECT id, state, created_at, updated_at, expires_at
		FROM planner.wizard_sessions
		WHERE id = $1 AND expires_at > CURRENT_TIMESTAMP`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &state, &s.CreatedAt, &s.UpdatedAt, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	if err := json.Unmarshal(state, &s.State); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %w", err)
	}
	return s, nil
}

// Save inserts or updates a session
func (r *PostgresStore) Save(ctx context.Context, s *models.Session) error {
	state, err := json.Marshal(s.State)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}
	query := `
		INSERT INTO planner.wizard_sessions (id, state, created_at, updated_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at, expires_at = EXCLUDED.expires_at`
	if _, err := r.db.ExecContext(ctx, query, s.ID, string(state), s.CreatedAt, s.UpdatedAt, s.ExpiresAt); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session
func (r *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM planner.wizard_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions that expired before now
func (r *PostgresStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM planner.wizard_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count expired sessions: %w", err)
	}
	return int(n), nil
}
