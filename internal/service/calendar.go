package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/cup"
	"github.com/apell0/managerspelet/internal/engine/economy"
	"github.com/apell0/managerspelet/internal/engine/match"
	"github.com/apell0/managerspelet/internal/engine/stats"
	"github.com/apell0/managerspelet/internal/world"
)

// CalendarNextWeekResult reports what a week's advance actually played.
type CalendarNextWeekResult struct {
	Round          int    `json:"round"`
	MatchesPlayed  int    `json:"matches_played"`
	CupRoundPlayed bool   `json:"cup_round_played"`
	SeasonPhase    string `json:"season_phase"`
}

// CalendarNextWeek plays every division's fixture for the current round,
// advances the cup bracket if one is running, rolls the weekly economy
// (sponsor income, transfer market refresh, bot signings, revaluation),
// and moves the
// season phase to postseason once every division has exhausted its
// fixture list (spec §4.5/§4.6).
func (s *Service) CalendarNextWeek(ctx context.Context, careerID string) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		r := transactionRNG(w)
		result := CalendarNextWeekResult{Round: w.CurrentRound}
		accumulators := stats.Maps{
			SeasonPlayers: w.PlayerStats, CareerPlayers: w.PlayerCareerStats,
			SeasonClubs: w.ClubStats, CareerClubs: w.ClubCareerStats,
		}

		maxRound := 0
		for _, d := range w.League.Divisions {
			for _, m := range w.FixturesByDivision[d.Name] {
				if m.Round > maxRound {
					maxRound = m.Round
				}
				if m.Round != w.CurrentRound {
					continue
				}
				home := w.ClubByName(m.Home)
				away := w.ClubByName(m.Away)
				if home == nil || away == nil {
					continue
				}
				ref := refereeFor(home.Name, away.Name)
				rec := match.Simulate(r, home, away, match.Sides{
					HomeTactic: home.Tactic, AwayTactic: away.Tactic,
					HomeAggr: home.Aggressiveness, AwayAggr: away.Aggressiveness,
				}, ref, core.CompetitionLeague, w.CurrentRound)
				stats.FoldMatch(accumulators, rec, &w.MatchLog)
				result.MatchesPlayed++
			}
		}

		if w.CupState != nil && !w.CupState.Finished {
			ref := refereeFor("cup-round", w.CupState.CurrentClubs[0])
			legs := cup.AdvanceRound(w.CupState, r, func(name string) *core.Club { return w.ClubByName(name) },
				ref, core.DefaultTactic(), core.DefaultTactic(),
				core.AggressivenessMedium, core.AggressivenessMedium)
			for _, leg := range legs {
				if leg.Match != nil {
					stats.FoldMatch(accumulators, leg.Match, &w.MatchLog)
				}
			}
			result.CupRoundPlayed = true
		}

		w.TableSnapshot = stats.RebuildTable(w.MatchLog)

		economy.ProcessWeekly(r, w.League, &w.TransferList, w.Season, w.CalendarWeek, w.PlayerStats, &w.Meta.NextGeneratedPlayerID)

		w.CurrentRound++
		w.CalendarWeek++
		if w.CurrentRound > maxRound {
			w.SeasonPhase = core.PhasePostseason
		}
		result.SeasonPhase = string(w.SeasonPhase)

		return result, nil
	})
}

// refereeFor resolves a deterministic referee name for a fixture with
// neutral skill/hardness (spec §4.2 step 1).
func refereeFor(home, away string) core.Referee {
	ref := core.Referee{}
	core.ResolveRefereeName(&ref, home, away)
	return ref
}
