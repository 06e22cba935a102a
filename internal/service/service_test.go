package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/config"
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/store"
	"github.com/apell0/managerspelet/internal/world"
)

func newTestService(t *testing.T, cfg *config.Config) (*Service, *store.CareerManager) {
	t.Helper()
	js, err := store.NewJSONStore(t.TempDir())
	require.NoError(t, err)
	manager := &store.CareerManager{Store: js}
	svc := New(manager, cfg)
	return svc, manager
}

func seedCareer(t *testing.T, manager *store.CareerManager, id string) {
	t.Helper()
	w, err := world.NewCareer(world.CareerOptions{
		CareerID: id, Structure: core.FormatFlat, Levels: 1,
		TeamsPerDivision: 4, UserTeamName: "FC", Seed: 1,
	})
	require.NoError(t, err)
	require.NoError(t, manager.Store.Save(context.Background(), id, w))
}

func TestWithWorldPersistsOnSuccessAndBumpsVersion(t *testing.T) {
	cfg := &config.Config{Features: config.FeatureConfig{PersistChanges: true}}
	svc, manager := newTestService(t, cfg)
	seedCareer(t, manager, "c1")

	res := svc.WithWorld(context.Background(), "c1", true, func(w *world.GameState) (any, error) {
		w.CalendarWeek = 42
		return "done", nil
	})
	require.True(t, res.OK)
	assert.Equal(t, "done", res.Data)

	loaded, err := manager.Store.Load(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.CalendarWeek)
	assert.Equal(t, 2, loaded.Meta.Version) // NewCareer starts at 1, WithWorld bumps on persist
}

func TestWithWorldDoesNotPersistOnFnError(t *testing.T) {
	cfg := &config.Config{Features: config.FeatureConfig{PersistChanges: true}}
	svc, manager := newTestService(t, cfg)
	seedCareer(t, manager, "c2")

	wantErr := errors.New("boom")
	res := svc.WithWorld(context.Background(), "c2", true, func(w *world.GameState) (any, error) {
		w.CalendarWeek = 99
		return nil, wantErr
	})
	require.False(t, res.OK)
	assert.Equal(t, "UNEXPECTED_ERROR", res.Error.Code)

	loaded, err := manager.Store.Load(context.Background(), "c2")
	require.NoError(t, err)
	assert.NotEqual(t, 99, loaded.CalendarWeek)
}

func TestWithWorldHonorsPersistFalse(t *testing.T) {
	cfg := &config.Config{Features: config.FeatureConfig{PersistChanges: true}}
	svc, manager := newTestService(t, cfg)
	seedCareer(t, manager, "c3")

	res := svc.WithWorld(context.Background(), "c3", false, func(w *world.GameState) (any, error) {
		w.CalendarWeek = 7
		return nil, nil
	})
	require.True(t, res.OK)

	loaded, err := manager.Store.Load(context.Background(), "c3")
	require.NoError(t, err)
	assert.NotEqual(t, 7, loaded.CalendarWeek)
}

func TestWithWorldMockModeReadsGeneratedCareerNotDisk(t *testing.T) {
	cfg := &config.Config{Features: config.FeatureConfig{MockMode: true, MockSeed: 5}}
	svc, manager := newTestService(t, cfg)
	seedCareer(t, manager, "real-career")

	var sawTeamsPerDivision int
	res := svc.WithWorld(context.Background(), "mock-career", false, func(w *world.GameState) (any, error) {
		sawTeamsPerDivision = len(w.League.Divisions[0].Clubs)
		return nil, nil
	})
	require.True(t, res.OK)
	assert.Equal(t, 8, sawTeamsPerDivision) // loadMockWorld's fixed TeamsPerDivision
}

func TestPersistAllowedDisablePersistOverridesRequest(t *testing.T) {
	svc := &Service{Config: &config.Config{Features: config.FeatureConfig{DisablePersist: true}}}
	assert.False(t, svc.persistAllowed(true))
}

func TestPersistAllowedMockModeRequiresExplicitPersistChanges(t *testing.T) {
	svc := &Service{Config: &config.Config{Features: config.FeatureConfig{MockMode: true}}}
	assert.False(t, svc.persistAllowed(true))

	svc.Config.Features.PersistChanges = true
	assert.True(t, svc.persistAllowed(true))
}

func TestPersistAllowedFalseWhenNotRequested(t *testing.T) {
	svc := &Service{Config: &config.Config{}}
	assert.False(t, svc.persistAllowed(false))
}

func TestResultOkAndFail(t *testing.T) {
	ok := Ok(5)
	assert.True(t, ok.OK)
	assert.Equal(t, 5, ok.Data)

	fail := Fail(core.NewNotFoundError("career", "x"))
	assert.False(t, fail.OK)
	assert.Equal(t, "NOT_FOUND", fail.Error.Code)
}
