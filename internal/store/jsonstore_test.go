package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

func sampleState(t *testing.T) *world.GameState {
	t.Helper()
	w, err := world.NewCareer(world.CareerOptions{
		CareerID: "career-1", Structure: core.FormatFlat, Levels: 1,
		TeamsPerDivision: 4, UserTeamName: "Test FC", Seed: 1,
	})
	require.NoError(t, err)
	return w
}

func TestJSONStoreSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	w := sampleState(t)
	require.NoError(t, s.Save(ctx, "career-1", w))

	loaded, err := s.Load(ctx, "career-1")
	require.NoError(t, err)
	assert.Equal(t, w.Meta.CareerID, loaded.Meta.CareerID)
	assert.Len(t, loaded.League.AllClubs(), len(w.League.AllClubs()))
}

func TestJSONStoreLoadMissingCareerIsNotFound(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", core.Code(err))
}

func TestJSONStoreLoadCorruptFileReturnsCorruptError(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)

	badPath := s.path("broken")
	require.NoError(t, os.WriteFile(badPath, []byte("not json"), 0o644))

	_, err = s.Load(context.Background(), "broken")
	require.Error(t, err)
	assert.Equal(t, "CORRUPT", core.Code(err))
}

func TestJSONStoreListReturnsSavedCareerIDsOnly(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "alpha", sampleState(t)))
	require.NoError(t, s.Save(ctx, "beta", sampleState(t)))

	ids, err := s.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, ids)
}

func TestJSONStoreDeleteRemovesSaveFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "gone", sampleState(t)))
	require.NoError(t, s.Delete(ctx, "gone"))

	_, err = s.Load(ctx, "gone")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", core.Code(err))
}

func TestJSONStoreDeleteMissingCareerIsNotFound(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(dir)
	require.NoError(t, err)

	err = s.Delete(context.Background(), "never-existed")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", core.Code(err))
}
