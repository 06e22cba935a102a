package cup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

func buildClub(name string, skill int) *core.Club {
	c := &core.Club{ClubID: "club-" + name, Name: name, Tactic: core.DefaultTactic(), Aggressiveness: core.AggressivenessMedium}
	counts := map[core.Position]int{core.GK: 2, core.DF: 6, core.MF: 6, core.FW: 4}
	id, number := 1, 1
	for pos, n := range counts {
		for i := 0; i < n; i++ {
			c.Players = append(c.Players, &core.Player{ID: id, First: "P", Last: name, Age: 25, Position: pos, Number: number, SkillOpen: skill, SkillHidden: 50, FormNow: 10, FormSeason: 10})
			id++
			number++
		}
	}
	for i := 0; i < 11; i++ {
		c.PreferredLineup = append(c.PreferredLineup, c.Players[i].ID)
	}
	return c
}

func TestBuildPadsToNextPowerOfTwoByDuplicatingTail(t *testing.T) {
	state := Build([]string{"A", "B", "C"}, core.DefaultCupRules())
	assert.Len(t, state.CurrentClubs, 4)
	assert.Equal(t, 1, state.Round)
	assert.False(t, state.Finished)
	// The padded entrant must be a duplicate from the tail of the original list.
	assert.Contains(t, []string{"A", "B", "C"}, state.CurrentClubs[3])
}

func TestBuildExactPowerOfTwoNeedsNoPadding(t *testing.T) {
	state := Build([]string{"A", "B", "C", "D"}, core.DefaultCupRules())
	assert.Len(t, state.CurrentClubs, 4)
}

func TestBuildEmptyEntrantsFinishesImmediately(t *testing.T) {
	state := Build(nil, core.DefaultCupRules())
	assert.True(t, state.Finished)
}

func TestAdvanceRoundSelfPairingIsAutomaticWalkover(t *testing.T) {
	rules := core.DefaultCupRules()
	state := Build([]string{"A", "B", "C"}, rules)
	// One pairing in a 3-entrant bracket padded to 4 is a duplicate self-pairing.
	lookup := func(name string) *core.Club { return buildClub(name, 15) }
	r := rng.New(1)
	results := AdvanceRound(state, r, lookup, core.Referee{}, core.DefaultTactic(), core.DefaultTactic(), core.AggressivenessMedium, core.AggressivenessMedium)

	sawWalkover := false
	for _, res := range results {
		if res.Walkover {
			sawWalkover = true
			assert.Equal(t, res.Home, res.Away)
			assert.Equal(t, res.Home, res.Winner)
		}
	}
	assert.True(t, sawWalkover)
	assert.Len(t, state.CurrentClubs, 2)
	assert.Equal(t, 2, state.Round)
}

func TestAdvanceRoundToFinishProducesOneWinner(t *testing.T) {
	rules := core.DefaultCupRules()
	entrants := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	state := Build(entrants, rules)
	lookup := func(name string) *core.Club { return buildClub(name, 15) }
	r := rng.New(5)

	for !state.Finished {
		before := len(state.CurrentClubs)
		AdvanceRound(state, r, lookup, core.Referee{}, core.DefaultTactic(), core.DefaultTactic(), core.AggressivenessMedium, core.AggressivenessMedium)
		require.Less(t, len(state.CurrentClubs), before)
	}
	assert.NotEmpty(t, state.Winner)
	assert.Contains(t, entrants, state.Winner)
}

func TestAdvanceRoundOnFinishedStateIsNoop(t *testing.T) {
	state := &core.CupState{CurrentClubs: []string{"A"}, Finished: true, Winner: "A"}
	r := rng.New(1)
	results := AdvanceRound(state, r, func(string) *core.Club { return nil }, core.Referee{}, core.DefaultTactic(), core.DefaultTactic(), core.AggressivenessMedium, core.AggressivenessMedium)
	assert.Nil(t, results)
	assert.Equal(t, "A", state.Winner)
}

func TestStageLabel(t *testing.T) {
	assert.Equal(t, "Winner", StageLabel(1))
	assert.Equal(t, "Final", StageLabel(2))
	assert.Equal(t, "Semifinal", StageLabel(4))
	assert.Equal(t, "Quarterfinal", StageLabel(8))
	assert.Equal(t, "Round", StageLabel(16))
}
