package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
)

func TestBuildStandingsSplitsHomeAndAwayFromTotal(t *testing.T) {
	log := []*core.MatchRecord{
		{Competition: core.CompetitionLeague, HomeName: "A", AwayName: "B", HomeGoals: 2, AwayGoals: 0},
		{Competition: core.CompetitionLeague, HomeName: "B", AwayName: "A", HomeGoals: 1, AwayGoals: 1},
	}
	view := buildStandings(log)

	require.Len(t, view.Total, 2)
	require.Len(t, view.Home, 2)
	require.Len(t, view.Away, 2)

	for _, row := range view.Home {
		if row.ClubName == "A" {
			assert.Equal(t, 1, row.Played)
			assert.Equal(t, 1, row.Wins)
		}
		if row.ClubName == "B" {
			assert.Equal(t, 1, row.Played)
			assert.Equal(t, 1, row.Draws)
		}
	}
}

func TestBuildStandingsIgnoresCupFixtures(t *testing.T) {
	log := []*core.MatchRecord{
		{Competition: core.CompetitionCup, HomeName: "A", AwayName: "B", HomeGoals: 3, AwayGoals: 0},
	}
	view := buildStandings(log)
	assert.Empty(t, view.Home)
	assert.Empty(t, view.Away)
}

func TestBuildStandingsOrdersByPointsThenGoalDiffThenName(t *testing.T) {
	log := []*core.MatchRecord{
		{Competition: core.CompetitionLeague, HomeName: "Z", AwayName: "Y", HomeGoals: 3, AwayGoals: 0},
		{Competition: core.CompetitionLeague, HomeName: "Y", AwayName: "Z", HomeGoals: 0, AwayGoals: 3},
	}
	view := buildStandings(log)
	require.Len(t, view.Total, 2)
	assert.Equal(t, "Z", view.Total[0].ClubName)

	tied := buildStandings([]*core.MatchRecord{
		{Competition: core.CompetitionLeague, HomeName: "X", AwayName: "W", HomeGoals: 2, AwayGoals: 0},
		{Competition: core.CompetitionLeague, HomeName: "V", AwayName: "U", HomeGoals: 1, AwayGoals: 0},
		{Competition: core.CompetitionLeague, HomeName: "B", AwayName: "A", HomeGoals: 0, AwayGoals: 0},
	})
	require.Len(t, tied.Total, 6)
	assert.Equal(t, "X", tied.Total[0].ClubName) // 3 pts, goal diff +2
	assert.Equal(t, "V", tied.Total[1].ClubName) // 3 pts, goal diff +1
	assert.Equal(t, "A", tied.Total[2].ClubName) // level with B on points, goal diff and goals for
	assert.Equal(t, "B", tied.Total[3].ClubName)
}
