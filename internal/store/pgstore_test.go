package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/testutils"
)

var pgTestStore *PGStore

// TestMain spins up one Postgres testcontainer for the whole package's
// pgstore tests, mirroring the api package's TestMain in the source this
// was adapted from. NewPGStore runs its own ensureSchema, so no
// migrations directory is needed here.
func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := testutils.NewPostgresContainer(ctx)
	if err != nil {
		os.Exit(m.Run()) // no docker available in this environment; pg tests below skip themselves
	}
	defer container.Terminate(ctx)

	pgTestStore, err = NewPGStore(ctx, container.ConnStr)
	if err != nil {
		panic("failed to open pg store: " + err.Error())
	}
	defer pgTestStore.Close()

	os.Exit(m.Run())
}

func requirePGStore(t *testing.T) *PGStore {
	t.Helper()
	if pgTestStore == nil {
		t.Skip("no postgres testcontainer available")
	}
	return pgTestStore
}

func TestPGStoreSaveThenLoadRoundTrips(t *testing.T) {
	s := requirePGStore(t)
	ctx := context.Background()
	w := sampleState(t)

	require.NoError(t, s.Save(ctx, "pg-career-1", w))
	loaded, err := s.Load(ctx, "pg-career-1")
	require.NoError(t, err)
	assert.Equal(t, w.Meta.CareerID, loaded.Meta.CareerID)
	assert.Len(t, loaded.League.AllClubs(), len(w.League.AllClubs()))
}

func TestPGStoreSaveUpsertsOnRepeatedCareerID(t *testing.T) {
	s := requirePGStore(t)
	ctx := context.Background()
	w := sampleState(t)

	require.NoError(t, s.Save(ctx, "pg-career-2", w))
	w.CalendarWeek = 42
	require.NoError(t, s.Save(ctx, "pg-career-2", w))

	loaded, err := s.Load(ctx, "pg-career-2")
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.CalendarWeek)
}

func TestPGStoreLoadMissingCareerIsNotFound(t *testing.T) {
	s := requirePGStore(t)
	_, err := s.Load(context.Background(), "pg-does-not-exist")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", core.Code(err))
}

func TestPGStoreListReturnsSavedCareerIDsOnly(t *testing.T) {
	s := requirePGStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "pg-list-a", sampleState(t)))
	require.NoError(t, s.Save(ctx, "pg-list-b", sampleState(t)))

	ids, err := s.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "pg-list-a")
	assert.Contains(t, ids, "pg-list-b")
}

func TestPGStoreDeleteRemovesRow(t *testing.T) {
	s := requirePGStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "pg-gone", sampleState(t)))
	require.NoError(t, s.Delete(ctx, "pg-gone"))

	_, err := s.Load(ctx, "pg-gone")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", core.Code(err))
}

func TestPGStoreDeleteMissingCareerIsNotFound(t *testing.T) {
	s := requirePGStore(t)
	err := s.Delete(context.Background(), "pg-never-existed")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", core.Code(err))
}
