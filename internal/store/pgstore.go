package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

// PGStore is the optional Postgres-backed CareerStore, selected by
// MANAGER_CAREER_BACKEND=postgres (SPEC_FULL.md §11). Careers are stored
// as one jsonb row each; Postgres gives dual-write durability and lets an
// operator inspect careers with ordinary SQL without decoding the
// JSON save format by hand.
type PGStore struct {
	db *sql.DB
}

// NewPGStore opens a connection pool against dsn and ensures the
// career_saves table exists.
func NewPGStore(ctx context.Context, dsn string) (*PGStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PGStore{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Close releases the underlying connection pool.
func (s *PGStore) Close() error {
	return s.db.Close()
}

func (s *PGStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS career_saves (
			career_id  TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create career_saves table: %w", err)
	}
	return nil
}

// Load fetches and decodes a career row, healing and validating it before
// returning.
func (s *PGStore) Load(ctx context.Context, careerID string) (*world.GameState, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM career_saves WHERE career_id = $1`, careerID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, core.NewNotFoundError("career", careerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load career %s: %w", careerID, err)
	}

	var w world.GameState
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, core.NewCorruptError(fmt.Sprintf("career %s: %v", careerID, err))
	}
	w.EnsureContainers()
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// Save upserts a career row inside a transaction.
func (s *PGStore) Save(ctx context.Context, careerID string, w *world.GameState) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal career %s: %w", careerID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO career_saves (career_id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (career_id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, careerID, data)
	if err != nil {
		return fmt.Errorf("failed to save career %s: %w", careerID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit career %s: %w", careerID, err)
	}
	return nil
}

// List returns every stored career id, most recently updated first.
func (s *PGStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT career_id FROM career_saves ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan career id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate careers: %w", err)
	}
	return ids, nil
}

// Delete removes a career row.
func (s *PGStore) Delete(ctx context.Context, careerID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM career_saves WHERE career_id = $1`, careerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete career %s: %w", careerID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to confirm deletion of career %s: %w", careerID, err)
	}
	if n == 0 {
		return core.NewNotFoundError("career", careerID)
	}
	return nil
}
