// Package store persists and retrieves GameState snapshots. CareerStore
// is the seam the service layer depends on; jsonstore is the always-
// available default, pgstore an optional Postgres-backed alternative
// selected by MANAGER_CAREER_BACKEND=postgres (SPEC_FULL.md §11).
package store

import (
	"context"

	"github.com/apell0/managerspelet/internal/world"
)

// CareerStore loads, saves, lists, and deletes career snapshots keyed by
// career id.
type CareerStore interface {
	Load(ctx context.Context, careerID string) (*world.GameState, error)
	Save(ctx context.Context, careerID string, w *world.GameState) error
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, careerID string) error
}
