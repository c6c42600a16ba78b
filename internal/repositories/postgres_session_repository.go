package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CodedGrimoire/ChartGenie/internal/models"
)

// PostgresSessionStore is the durable SessionStore. History is stored as
// a JSONB blob since it is only ever read and written whole.
type PostgresSessionStore struct {
	pool *pgxpool.Pool
}

func NewPostgresSessionStore(pool *pgxpool.Pool) (*PostgresSessionStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chartgenie_sessions (
			id              text PRIMARY KEY,
			history         jsonb NOT NULL DEFAULT '[]',
			current_diagram text NOT NULL DEFAULT '',
			created_at      timestamptz NOT NULL,
			updated_at      timestamptz NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure sessions table: %w", err)
	}

	return &PostgresSessionStore{pool: pool}, nil
}

func (s *PostgresSessionStore) Get(ctx context.Context, id string) (*models.ConversationSession, error) {
	var (
		historyRaw []byte
		session    = models.ConversationSession{ID: id}
	)

	err := s.pool.QueryRow(ctx, `
		SELECT history, current_diagram, created_at, updated_at
		FROM chartgenie_sessions WHERE id = $1`, id).
		Scan(&historyRaw, &session.CurrentDiagram, &session.CreatedAt, &session.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	if err := json.Unmarshal(historyRaw, &session.History); err != nil {
		return nil, fmt.Errorf("failed to decode session history: %w", err)
	}

	return &session, nil
}

func (s *PostgresSessionStore) Put(ctx context.Context, session *models.ConversationSession) error {
	historyRaw, err := json.Marshal(session.History)
	if err != nil {
		return fmt.Errorf("failed to encode session history: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO chartgenie_sessions (id, history, current_diagram, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			history = EXCLUDED.history,
			current_diagram = EXCLUDED.current_diagram,
			updated_at = EXCLUDED.updated_at`,
		session.ID, historyRaw, session.CurrentDiagram, session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.ID, err)
	}
	return nil
}

func (s *PostgresSessionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM chartgenie_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

func (s *PostgresSessionStore) Sweep(ctx context.Context, maxIdle time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxIdle)

	tag, err := s.pool.Exec(ctx, `DELETE FROM chartgenie_sessions WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
