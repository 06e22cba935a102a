package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

func sampleWorld(t *testing.T) *world.GameState {
	t.Helper()
	w, err := world.NewCareer(world.CareerOptions{
		CareerID: "career-1", Structure: core.FormatFlat, Levels: 1,
		TeamsPerDivision: 4, UserTeamName: "My FC", Seed: 1,
	})
	require.NoError(t, err)
	return w
}

func TestProjectNeverMutatesTheWorld(t *testing.T) {
	w := sampleWorld(t)
	before := len(w.League.AllClubs())
	Project(w)
	assert.Equal(t, before, len(w.League.AllClubs()))
}

func TestProjectAssignsStableTeamIDsAcrossAllViews(t *testing.T) {
	w := sampleWorld(t)
	c := Project(w)

	require.NotEmpty(t, c.Teams)
	teamIDs := map[string]bool{}
	for _, tv := range c.Teams {
		teamIDs[tv.ID] = true
	}
	for _, division := range c.League.Divisions {
		for _, id := range division.Teams {
			assert.True(t, teamIDs[id], "division team id %q should match an assigned team id", id)
		}
	}
	for teamID := range c.Squads {
		assert.True(t, teamIDs[teamID])
	}
}

func TestProjectSetsUserTeamIDFromMeta(t *testing.T) {
	w := sampleWorld(t)
	c := Project(w)
	require.NotEmpty(t, c.Meta.UserTeamID)

	found := false
	for _, tv := range c.Teams {
		if tv.ID == c.Meta.UserTeamID && tv.Name == "My FC" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestProjectFixtureStatusReflectsMatchLog(t *testing.T) {
	w := sampleWorld(t)
	div := w.League.Divisions[0]
	first := w.FixturesByDivision[div.Name][0]

	w.MatchLog = append(w.MatchLog, &core.MatchRecord{
		Competition: core.CompetitionLeague, Round: first.Round,
		HomeName: first.Home, AwayName: first.Away,
		HomeGoals: 1, AwayGoals: 0,
	})

	c := Project(w)
	var status string
	for _, f := range c.Fixtures {
		if f.Round == first.Round && f.Home == first.Home && f.Away == first.Away {
			status = f.Status
		}
	}
	assert.Equal(t, "final", status)
}

func TestProjectCupsViewEmptyWhenNoCupState(t *testing.T) {
	w := sampleWorld(t)
	c := Project(w)
	assert.Empty(t, c.Cups.ByID)
}

func TestProjectEconomyViewEmptyWhenUserTeamUnresolved(t *testing.T) {
	w := sampleWorld(t)
	w.Meta.UserTeamID = "does-not-exist"
	c := Project(w)
	assert.Empty(t, c.Economy.TeamID)
	assert.Empty(t, c.Economy.Ledger)
}
