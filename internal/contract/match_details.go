package contract

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

// LineupsView is the `lineups` key of a MatchDetailsView: starting XI
// player ids, home and away.
type LineupsView struct {
	Home []int `json:"home"`
	Away []int `json:"away"`
}

// PossessionView is the `stats.possession` key of a MatchDetailsView
// (spec §8 scenario 3: home+away must sum to 100).
type PossessionView struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// MatchDetailsView is the `match get`/`match simulate` payload: before a
// fixture is played it carries Status "scheduled" and empty Events and
// Lineups; once played it carries the full simulated detail.
type MatchDetailsView struct {
	ID          string `json:"id"`
	Competition string `json:"competition"`
	Round       int    `json:"round"`
	Home        string `json:"home"`
	Away        string `json:"away"`
	Status      string `json:"status"`

	HomeGoals int `json:"home_goals,omitempty"`
	AwayGoals int `json:"away_goals,omitempty"`

	Events  []core.MatchEvent `json:"events"`
	Lineups LineupsView       `json:"lineups"`

	HomeUnitRatings []core.UnitRating `json:"ratings_by_unit_home,omitempty"`
	AwayUnitRatings []core.UnitRating `json:"ratings_by_unit_away,omitempty"`

	Possession PossessionView `json:"possession"`
}

// MatchDetails resolves a contract match id to its details view: a
// "final" view built from the archived MatchRecord if the fixture has
// been played, else a "scheduled" view synthesised from the unplayed
// fixture entry. The bool is false when matchID names no fixture at all.
func MatchDetails(w *world.GameState, matchID string) (MatchDetailsView, bool) {
	for _, rec := range w.MatchLog {
		if MatchID(rec.Competition, rec.Round, rec.HomeName, rec.AwayName) == matchID {
			return matchDetailsFromRecord(rec), true
		}
	}

	for _, fixtures := range w.FixturesByDivision {
		for _, m := range fixtures {
			if MatchID(core.CompetitionLeague, m.Round, m.Home, m.Away) == matchID {
				return MatchDetailsView{
					ID: matchID, Competition: string(core.CompetitionLeague),
					Round: m.Round, Home: m.Home, Away: m.Away,
					Status:  "scheduled",
					Events:  []core.MatchEvent{},
					Lineups: LineupsView{Home: []int{}, Away: []int{}},
				}, true
			}
		}
	}
	return MatchDetailsView{}, false
}

func matchDetailsFromRecord(rec *core.MatchRecord) MatchDetailsView {
	return MatchDetailsView{
		ID:          MatchID(rec.Competition, rec.Round, rec.HomeName, rec.AwayName),
		Competition: string(rec.Competition),
		Round:       rec.Round, Home: rec.HomeName, Away: rec.AwayName,
		Status:    "final",
		HomeGoals: rec.HomeGoals, AwayGoals: rec.AwayGoals,
		Events:          rec.Events,
		Lineups:         LineupsView{Home: rec.HomeLineup, Away: rec.AwayLineup},
		HomeUnitRatings: rec.HomeUnitRatings,
		AwayUnitRatings: rec.AwayUnitRatings,
		Possession:      PossessionView{Home: rec.HomeStats.Possession, Away: rec.AwayStats.Possession},
	}
}
