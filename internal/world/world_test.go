package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
)

func TestNewCareerFlatBuildsOneDivisionPerLevel(t *testing.T) {
	w, err := NewCareer(CareerOptions{
		CareerID: "c1", Structure: core.FormatFlat, Levels: 1,
		TeamsPerDivision: 4, UserTeamName: "My FC", Seed: 1,
	})
	require.NoError(t, err)
	require.Len(t, w.League.Divisions, 1)
	assert.Len(t, w.League.Divisions[0].Clubs, 4)
	assert.Equal(t, "My FC", w.League.Divisions[0].Clubs[0].Name)
	assert.NoError(t, w.Validate())
}

func TestNewCareerPyramidBuildsTriangularDivisionCount(t *testing.T) {
	w, err := NewCareer(CareerOptions{
		CareerID: "c2", Structure: core.FormatPyramid, Levels: 3,
		TeamsPerDivision: 4, Seed: 2,
	})
	require.NoError(t, err)
	// level 1 -> 1 division, level 2 -> 2 divisions, level 3 -> 3 divisions
	assert.Len(t, w.League.Divisions, 6)
}

func TestNewCareerRejectsTooFewTeamsPerDivision(t *testing.T) {
	_, err := NewCareer(CareerOptions{Structure: core.FormatFlat, Levels: 1, TeamsPerDivision: 1, Seed: 1})
	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", core.Code(err))
}

func TestNewCareerGeneratesSquadsSatisfyingMinimumSize(t *testing.T) {
	w, err := NewCareer(CareerOptions{
		CareerID: "c3", Structure: core.FormatFlat, Levels: 1,
		TeamsPerDivision: 6, Seed: 3,
	})
	require.NoError(t, err)
	for _, c := range w.League.AllClubs() {
		assert.GreaterOrEqual(t, len(c.Players), core.MinSquad)
	}
}

func TestNewCareerBuildsFixturesAndJuniorOffersPerDivision(t *testing.T) {
	w, err := NewCareer(CareerOptions{
		CareerID: "c4", Structure: core.FormatFlat, Levels: 1,
		TeamsPerDivision: 4, DoubleRound: true, Seed: 4,
	})
	require.NoError(t, err)
	div := w.League.Divisions[0]
	assert.Len(t, w.FixturesByDivision[div.Name], 4*3) // N*(N-1) double round
	for _, c := range div.Clubs {
		assert.Contains(t, w.JuniorOffers, c.Name)
	}
	assert.NotEmpty(t, w.TransferList)
}

func TestEnsureContainersInitializesNilMaps(t *testing.T) {
	w := &GameState{}
	w.EnsureContainers()
	assert.NotNil(t, w.FixturesByDivision)
	assert.NotNil(t, w.TableSnapshot)
	assert.NotNil(t, w.PlayerStats)
	assert.NotNil(t, w.Mailbox)
	assert.NotNil(t, w.Options)
	assert.NotNil(t, w.History)
	assert.Equal(t, 1, w.Season)
	assert.Equal(t, 1, w.CurrentRound)
	assert.Equal(t, core.PhasePreseason, w.SeasonPhase)
}

func TestEnsureContainersHealsZeroValuePlayerFields(t *testing.T) {
	w := &GameState{League: &core.League{Divisions: []*core.Division{
		{Name: "D1", Clubs: []*core.Club{
			{Name: "A", Players: []*core.Player{{ID: 1}}},
		}},
	}}}
	w.EnsureContainers()
	p := w.League.Divisions[0].Clubs[0].Players[0]
	assert.Equal(t, 50, p.SkillHidden)
	assert.Equal(t, 10, p.FormNow)
	assert.Equal(t, 10, p.FormSeason)
}

// validSquad builds a roster satisfying the minimum positional quotas
// (1 GK, 4 DF, 4 MF, 2 FW) and core.MinSquad (one extra DF and MF,
// 13 total), starting player ids at idBase.
func validSquad(idBase int) []*core.Player {
	counts := map[core.Position]int{core.GK: 1, core.DF: 5, core.MF: 5, core.FW: 2}
	var players []*core.Player
	id := idBase
	for pos, n := range counts {
		for i := 0; i < n; i++ {
			players = append(players, &core.Player{ID: id, Position: pos, SkillOpen: 10, SkillHidden: 50, Age: 20})
			id++
		}
	}
	return players
}

func TestValidateDetectsDuplicatePlayerOwnership(t *testing.T) {
	shared := &core.Player{ID: 1, Position: core.GK, SkillOpen: 10, SkillHidden: 50, Age: 20}
	clubA := &core.Club{Name: "A", Players: append(validSquad(100), shared)}
	clubB := &core.Club{Name: "B", Players: append(validSquad(200), shared)}

	w := &GameState{League: &core.League{Divisions: []*core.Division{
		{Name: "D1", Clubs: []*core.Club{clubA, clubB}},
	}}}
	err := w.Validate()
	require.Error(t, err)
	assert.Equal(t, "CORRUPT", core.Code(err))
}

func TestValidateDetectsSkillOutOfRange(t *testing.T) {
	players := validSquad(1)
	players[0].SkillOpen = core.MaxSkillOpen + 5
	club := &core.Club{Name: "A", Players: players}
	w := &GameState{League: &core.League{Divisions: []*core.Division{
		{Name: "D1", Clubs: []*core.Club{club}},
	}}}
	err := w.Validate()
	require.Error(t, err)
	assert.Equal(t, "CORRUPT", core.Code(err))
}

func TestClubByNameResolvesAcrossDivisions(t *testing.T) {
	w := &GameState{League: &core.League{Divisions: []*core.Division{
		{Name: "D1", Clubs: []*core.Club{{Name: "Found"}}},
	}}}
	assert.NotNil(t, w.ClubByName("Found"))
	assert.Nil(t, w.ClubByName("Missing"))
}
