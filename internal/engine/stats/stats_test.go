package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
)

func sampleRecord() *core.MatchRecord {
	return &core.MatchRecord{
		Competition: core.CompetitionLeague,
		Round:       1,
		HomeName:    "Norra FC", AwayName: "Södra BK",
		HomeGoals: 2, AwayGoals: 1,
		MinutesPlayedHome: map[int]int{1: 90, 2: 90},
		MinutesPlayedAway: map[int]int{3: 90, 4: 45},
		RatingsByPlayer:   map[int]float64{1: 7.2, 2: 6.8, 3: 6.0, 4: 5.5},
		Events: []core.MatchEvent{
			{Minute: 10, Type: core.EventGoal, Team: "Norra FC", PlayerID: 1, AssistPlayerID: 2},
			{Minute: 70, Type: core.EventGoal, Team: "Södra BK", PlayerID: 3},
			{Minute: 80, Type: core.EventYellowCard, Team: "Norra FC", PlayerID: 1},
		},
		HomeStats: core.TeamMatchStats{Shots: 10, ShotsOn: 5, Possession: 55},
		AwayStats: core.TeamMatchStats{Shots: 8, ShotsOn: 3, Possession: 45},
	}
}

func TestFoldMatchAppendsToLogExactlyOnce(t *testing.T) {
	rec := sampleRecord()
	var log []*core.MatchRecord
	m := Maps{
		SeasonPlayers: map[int]*core.PlayerSeasonStats{}, CareerPlayers: map[int]*core.PlayerSeasonStats{},
		SeasonClubs: map[string]*core.ClubSeasonStats{}, CareerClubs: map[string]*core.ClubSeasonStats{},
	}
	FoldMatch(m, rec, &log)
	require.Len(t, log, 1)
	assert.Same(t, rec, log[0])
}

func TestFoldMatchUpdatesClubTallies(t *testing.T) {
	rec := sampleRecord()
	var log []*core.MatchRecord
	clubs := map[string]*core.ClubSeasonStats{}
	m := Maps{
		SeasonPlayers: map[int]*core.PlayerSeasonStats{}, CareerPlayers: map[int]*core.PlayerSeasonStats{},
		SeasonClubs: clubs, CareerClubs: map[string]*core.ClubSeasonStats{},
	}
	FoldMatch(m, rec, &log)

	home := clubs["Norra FC"]
	require.NotNil(t, home)
	assert.Equal(t, 1, home.Played)
	assert.Equal(t, 1, home.Wins)
	assert.Equal(t, 2, home.GoalsFor)
	assert.Equal(t, 1, home.GoalsAgainst)

	away := clubs["Södra BK"]
	require.NotNil(t, away)
	assert.Equal(t, 1, away.Losses)
	assert.Equal(t, 1, away.GoalsFor)
	assert.Equal(t, 2, away.GoalsAgainst)
}

func TestFoldMatchRoutesGoalAndAssist(t *testing.T) {
	rec := sampleRecord()
	var log []*core.MatchRecord
	players := map[int]*core.PlayerSeasonStats{}
	m := Maps{
		SeasonPlayers: players, CareerPlayers: map[int]*core.PlayerSeasonStats{},
		SeasonClubs: map[string]*core.ClubSeasonStats{}, CareerClubs: map[string]*core.ClubSeasonStats{},
	}
	FoldMatch(m, rec, &log)

	require.NotNil(t, players[1])
	assert.Equal(t, 1, players[1].Goals)
	assert.Equal(t, 1, players[1].YellowCards)
	require.NotNil(t, players[2])
	assert.Equal(t, 1, players[2].Assists)
}

func TestFoldMatchCleanSheetOnlyWhenOpponentScoresZero(t *testing.T) {
	rec := sampleRecord()
	rec.AwayGoals = 0
	var log []*core.MatchRecord
	players := map[int]*core.PlayerSeasonStats{}
	m := Maps{
		SeasonPlayers: players, CareerPlayers: map[int]*core.PlayerSeasonStats{},
		SeasonClubs: map[string]*core.ClubSeasonStats{}, CareerClubs: map[string]*core.ClubSeasonStats{},
	}
	FoldMatch(m, rec, &log)
	assert.Equal(t, 1, players[1].CleanSheets)
	assert.Equal(t, 0, players[3].CleanSheets) // away side conceded 2
}

func TestRebuildTableIgnoresCupFixtures(t *testing.T) {
	league := sampleRecord()
	cup := sampleRecord()
	cup.Competition = core.CompetitionCup
	cup.HomeName, cup.AwayName = "Cup Home", "Cup Away"

	table := RebuildTable([]*core.MatchRecord{league, cup})
	assert.Contains(t, table, "Norra FC")
	assert.NotContains(t, table, "Cup Home")
}

func TestTableRowPointsInvariant(t *testing.T) {
	table := RebuildTable([]*core.MatchRecord{sampleRecord()})
	for _, row := range table {
		assert.Equal(t, 3*row.Wins+row.Draws, row.Points)
	}
}

func TestSortedTableOrdersByPointsThenGoalDiffThenGoalsForThenName(t *testing.T) {
	table := map[string]*core.TableRow{
		"B": {ClubName: "B", Wins: 1, GoalsFor: 3, GoalsAgainst: 1},
		"A": {ClubName: "A", Wins: 1, GoalsFor: 3, GoalsAgainst: 1},
		"C": {ClubName: "C", Draws: 3, GoalsFor: 2, GoalsAgainst: 2},
	}
	for _, r := range table {
		r.RecomputePoints()
	}
	sorted := SortedTable(table)
	require.Len(t, sorted, 3)
	assert.Equal(t, "A", sorted[0].ClubName) // tied with B on points/diff/gf, A < B alphabetically
	assert.Equal(t, "B", sorted[1].ClubName)
	assert.Equal(t, "C", sorted[2].ClubName)
}
