package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

func newTestClub(name string, seed uint64) *core.Club {
	r := rng.New(seed)
	c := &core.Club{
		ClubID: "club-" + name,
		Name:   name,
		Cash:   1_000_000,
		Tactic: core.DefaultTactic(),
		Aggressiveness: core.AggressivenessMedium,
	}
	counts := map[core.Position]int{core.GK: 2, core.DF: 6, core.MF: 6, core.FW: 4}
	id, number := 1, 1
	for pos, n := range counts {
		for i := 0; i < n; i++ {
			c.Players = append(c.Players, &core.Player{
				ID: id, First: "P", Last: name, Age: 20 + r.IntN(10),
				Position: pos, Number: number,
				SkillOpen: 10 + r.IntN(15), SkillHidden: 50,
				FormNow: 10, FormSeason: 10,
			})
			id++
			number++
		}
	}
	for i := 0; i < 11; i++ {
		c.PreferredLineup = append(c.PreferredLineup, c.Players[i].ID)
	}
	capID := c.Players[0].ID
	c.CaptainID = &capID
	return c
}

func emptyClub(name string) *core.Club {
	return &core.Club{ClubID: "club-" + name, Name: name, Tactic: core.DefaultTactic(), Aggressiveness: core.AggressivenessMedium}
}

func sides() Sides {
	return Sides{HomeTactic: core.DefaultTactic(), AwayTactic: core.DefaultTactic(), HomeAggr: core.AggressivenessMedium, AwayAggr: core.AggressivenessMedium}
}

func TestSimulateMinutesSumToElevenTimesNinety(t *testing.T) {
	r := rng.New(42)
	home := newTestClub("Home", 1)
	away := newTestClub("Away", 2)
	rec := Simulate(r, home, away, sides(), core.Referee{}, core.CompetitionLeague, 1)

	homeTotal, awayTotal := 0, 0
	for _, m := range rec.MinutesPlayedHome {
		require.GreaterOrEqual(t, m, 0)
		require.LessOrEqual(t, m, 90)
		homeTotal += m
	}
	for _, m := range rec.MinutesPlayedAway {
		require.GreaterOrEqual(t, m, 0)
		require.LessOrEqual(t, m, 90)
		awayTotal += m
	}
	assert.Equal(t, 11*90, homeTotal)
	assert.Equal(t, 11*90, awayTotal)
}

func TestSimulateEmptyRostersYieldNoLineupOrEvents(t *testing.T) {
	r := rng.New(7)
	home := emptyClub("EmptyHome")
	away := emptyClub("EmptyAway")
	rec := Simulate(r, home, away, sides(), core.Referee{}, core.CompetitionLeague, 1)

	assert.Empty(t, rec.HomeLineup)
	assert.Empty(t, rec.AwayLineup)
	assert.Empty(t, rec.MinutesPlayedHome)
	assert.Empty(t, rec.MinutesPlayedAway)
	for _, ev := range rec.Events {
		assert.NotEqual(t, core.EventGoal, ev.Type, "no scorer exists to attribute a goal to")
	}
}

func TestSimulateHalftimeNeverExceedsFullTime(t *testing.T) {
	r := rng.New(99)
	home := newTestClub("Home", 3)
	away := newTestClub("Away", 4)
	for i := 0; i < 25; i++ {
		rec := Simulate(r, home, away, sides(), core.Referee{}, core.CompetitionLeague, i+1)
		assert.LessOrEqual(t, rec.HalftimeHome, rec.HomeGoals)
		assert.LessOrEqual(t, rec.HalftimeAway, rec.AwayGoals)
	}
}

func TestSimulatePossessionSumsToOneHundred(t *testing.T) {
	r := rng.New(11)
	home := newTestClub("Home", 5)
	away := newTestClub("Away", 6)
	rec := Simulate(r, home, away, sides(), core.Referee{}, core.CompetitionLeague, 1)
	assert.InDelta(t, 100.0, rec.HomeStats.Possession+rec.AwayStats.Possession, 0.01)
}

func TestSimulateLineupHasElevenPlayers(t *testing.T) {
	r := rng.New(13)
	home := newTestClub("Home", 8)
	away := newTestClub("Away", 9)
	rec := Simulate(r, home, away, sides(), core.Referee{}, core.CompetitionLeague, 1)
	assert.Len(t, rec.HomeLineup, 11)
	assert.Len(t, rec.AwayLineup, 11)
	assert.NotEmpty(t, rec.FormationHome)
}
