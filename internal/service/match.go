package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/match"
	"github.com/apell0/managerspelet/internal/engine/stats"
	"github.com/apell0/managerspelet/internal/world"
)

// MatchGet returns one match's details by its contract id: the archived
// record if it has been played, else a synthesised "scheduled" view of
// the still-unplayed fixture (spec §8 scenario 3).
func (s *Service) MatchGet(ctx context.Context, careerID, matchID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	details, ok := contract.MatchDetails(w, matchID)
	if !ok {
		return Fail(core.NewNotFoundError("match", matchID))
	}
	return Ok(details)
}

// MatchSetResultRequest manually overrides a single unplayed fixture's
// scoreline, bypassing the simulation kernel.
type MatchSetResultRequest struct {
	HomeGoals int `json:"home_goals"`
	AwayGoals int `json:"away_goals"`
}

// MatchSetResult records req as the final score of the named scheduled
// fixture without running the match kernel: no events, lineups, or
// per-player stats are produced for it.
func (s *Service) MatchSetResult(ctx context.Context, careerID, matchID string, req MatchSetResultRequest) Result {
	if req.HomeGoals < 0 || req.AwayGoals < 0 {
		return Fail(core.NewInvalidInputError("goals", "must be non-negative"))
	}
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		fixture, err := findScheduledFixture(w, matchID)
		if err != nil {
			return nil, err
		}
		rec := &core.MatchRecord{
			Competition: core.CompetitionLeague,
			Round:       fixture.Round,
			HomeName:    fixture.Home, AwayName: fixture.Away,
			HomeGoals: req.HomeGoals, AwayGoals: req.AwayGoals,
		}
		foldSingleMatch(w, rec)
		details, _ := contract.MatchDetails(w, matchID)
		return details, nil
	})
}

// MatchSimulate plays exactly one still-scheduled fixture through the
// match kernel, attributing the trigger to actor for logging only (spec
// §6 `match simulate`, §8 scenario 3).
func (s *Service) MatchSimulate(ctx context.Context, careerID, matchID, actor string) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		fixture, err := findScheduledFixture(w, matchID)
		if err != nil {
			return nil, err
		}
		home := w.ClubByName(fixture.Home)
		away := w.ClubByName(fixture.Away)
		if home == nil || away == nil {
			return nil, core.NewNotFoundError("club", fixture.Home+"/"+fixture.Away)
		}

		opLogger("match_simulate", careerID).Debug("simulating fixture", "match_id", matchID, "actor", actor)

		r := transactionRNG(w)
		ref := core.Referee{}
		core.ResolveRefereeName(&ref, home.Name, away.Name)
		rec := match.Simulate(r, home, away, match.Sides{
			HomeTactic: home.Tactic, AwayTactic: away.Tactic,
			HomeAggr: home.Aggressiveness, AwayAggr: away.Aggressiveness,
		}, ref, core.CompetitionLeague, fixture.Round)

		foldSingleMatch(w, rec)
		details, _ := contract.MatchDetails(w, matchID)
		return details, nil
	})
}

// scheduledFixture is the resolved (round, home, away) triple a matchID
// names among a world's still-unplayed league fixtures.
type scheduledFixture struct {
	Round      int
	Home, Away string
}

// findScheduledFixture resolves matchID to its fixture among
// w.FixturesByDivision, rejecting ids that are already archived in the
// match log (StateConflict) or that name no fixture at all (NotFound).
func findScheduledFixture(w *world.GameState, matchID string) (scheduledFixture, error) {
	for _, rec := range w.MatchLog {
		if contract.MatchID(rec.Competition, rec.Round, rec.HomeName, rec.AwayName) == matchID {
			return scheduledFixture{}, core.NewStateConflictError("match_simulate", "match already played")
		}
	}
	for _, fixtures := range w.FixturesByDivision {
		for _, m := range fixtures {
			if contract.MatchID(core.CompetitionLeague, m.Round, m.Home, m.Away) == matchID {
				return scheduledFixture{Round: m.Round, Home: m.Home, Away: m.Away}, nil
			}
		}
	}
	return scheduledFixture{}, core.NewNotFoundError("match", matchID)
}

// foldSingleMatch appends rec to the world's match log, stats
// accumulators, and table snapshot the same way a bulk calendar advance
// would for one fixture.
func foldSingleMatch(w *world.GameState, rec *core.MatchRecord) {
	accumulators := stats.Maps{
		SeasonPlayers: w.PlayerStats, CareerPlayers: w.PlayerCareerStats,
		SeasonClubs: w.ClubStats, CareerClubs: w.ClubCareerStats,
	}
	stats.FoldMatch(accumulators, rec, &w.MatchLog)
	w.TableSnapshot = stats.RebuildTable(w.MatchLog)
}
