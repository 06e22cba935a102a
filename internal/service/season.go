package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/cup"
	"github.com/apell0/managerspelet/internal/engine/season"
	"github.com/apell0/managerspelet/internal/world"
)

// SeasonStart builds a fresh single-elimination cup bracket from every
// club currently in the league and moves the phase to in_progress (spec
// §4.4/§4.5).
func (s *Service) SeasonStart(ctx context.Context, careerID string) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		if w.SeasonPhase != core.PhasePreseason {
			return nil, core.NewStateConflictError("season start", "season is already in progress or finished")
		}
		names := make([]string, 0)
		for _, c := range w.League.AllClubs() {
			names = append(names, c.Name)
		}
		w.CupState = cup.Build(names, core.DefaultCupRules())
		w.SeasonPhase = core.PhaseInProgress
		return w.CupState, nil
	})
}

// SeasonEndResult reports the headline outcome of a season rollover.
type SeasonEndResult struct {
	NewSeason    int    `json:"new_season"`
	CupWinner    string `json:"cup_winner,omitempty"`
	Retired      int    `json:"retired"`
}

// SeasonEnd runs the full end-of-season sequence (spec §4.5): promotion
// and relegation, history and trophy archival, stat snapshotting into
// career history, player progression and retirement, then a rollover that
// rebuilds fixtures and junior offers for the new season.
func (s *Service) SeasonEnd(ctx context.Context, careerID string) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		if w.SeasonPhase != core.PhasePostseason {
			return nil, core.NewStateConflictError("season end", "season has not reached postseason")
		}
		r := transactionRNG(w)

		season.PromoteRelegate(w.League, w.TableSnapshot)
		season.ArchiveHistoryAndTrophies(w.League, w.TableSnapshot, w.Season, w.CupState, nil)
		season.ArchiveStats(w.Season,
			w.PlayerStats, w.PlayerCareerStats, w.ClubStats, w.ClubCareerStats,
			w.PlayerStatsHistory, w.ClubStatsHistory)

		clubs := w.League.AllClubs()
		season.Progress(r, clubs, w.TableSnapshot, w.PlayerStatsHistory[w.Season])
		season.AgeAndRetire(clubs)

		cupWinner := ""
		if w.CupState != nil {
			cupWinner = w.CupState.Winner
		}

		newSeason := w.Season + 1
		result := season.Rollover(r, w.League, newSeason, &w.Meta.NextGeneratedPlayerID)
		w.FixturesByDivision = result.FixturesByDivision
		w.JuniorOffers = result.JuniorOffers

		w.Season = newSeason
		w.CurrentRound = 1
		w.CalendarWeek = 1
		w.TableSnapshot = map[string]*core.TableRow{}
		w.CupState = nil
		w.SeasonPhase = core.PhasePreseason

		return SeasonEndResult{NewSeason: newSeason, CupWinner: cupWinner}, nil
	})
}
