// Package cup implements the knockout cup state machine (spec §4.4):
// bracket construction with bye-padding, round advancement with single-
// or two-legged ties, and repeated advancement to a finish.
package cup

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/match"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

// LegResult is one played leg (or an automatic walkover) within a cup
// round.
type LegResult struct {
	Home, Away string
	Match      *core.MatchRecord
	Walkover   bool
	Winner     string
}

// Build constructs a CupState from the given entrant club names, padding
// up to the next power of two by duplicating the tail so every bye is
// realised as an automatic walkover (spec §4.4; see DESIGN.md for the
// Open Question this resolves).
func Build(entrants []string, rules core.CupRules) *core.CupState {
	padded := append([]string(nil), entrants...)
	n := nextPowerOfTwo(len(padded))
	for len(padded) < n {
		padded = append(padded, padded[len(padded)-1])
	}
	if len(padded) == 0 {
		return &core.CupState{Rules: rules, Finished: true}
	}
	return &core.CupState{Rules: rules, CurrentClubs: padded, Round: 1}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return n
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// clubLookup resolves a club by name across every division of the league.
type clubLookup func(name string) *core.Club

// AdvanceRound plays every pairing in the current round and returns the
// list of leg results, advancing state.CurrentClubs to the round's
// winners. If exactly one club remains, state.Finished is set.
func AdvanceRound(state *core.CupState, r *rng.Source, lookup clubLookup, ref core.Referee, homeTactic, awayTactic core.Tactic, homeAggr, awayAggr core.Aggressiveness) []LegResult {
	if state.Finished || len(state.CurrentClubs) <= 1 {
		state.Finished = len(state.CurrentClubs) == 1
		if state.Finished {
			state.Winner = state.CurrentClubs[0]
		}
		return nil
	}

	clubs := state.CurrentClubs
	var results []LegResult
	var winners []string

	for i := 0; i+1 < len(clubs); i += 2 {
		homeName, awayName := clubs[i], clubs[i+1]
		if homeName == awayName {
			// Self-pairing from bye-padding: automatic advance, no match played.
			results = append(results, LegResult{Home: homeName, Away: awayName, Walkover: true, Winner: homeName})
			winners = append(winners, homeName)
			continue
		}

		home := lookup(homeName)
		away := lookup(awayName)
		if home == nil || away == nil {
			// Missing club (e.g. relegated out of existence mid-career):
			// whichever side still resolves advances.
			if home != nil {
				winners = append(winners, homeName)
			} else if away != nil {
				winners = append(winners, awayName)
			}
			continue
		}

		finalRound := len(clubs) == 2
		twoLegged := state.Rules.TwoLegged && !(finalRound && !state.Rules.FinalTwoLegged)

		var winner string
		var last *core.MatchRecord
		if !twoLegged {
			rec := match.Simulate(r, home, away, match.Sides{HomeTactic: homeTactic, AwayTactic: awayTactic, HomeAggr: homeAggr, AwayAggr: awayAggr}, ref, core.CompetitionCup, state.Round)
			last = rec
			winner = decideWinner(homeName, awayName, rec.HomeGoals, rec.AwayGoals, r)
		} else {
			leg1 := match.Simulate(r, home, away, match.Sides{HomeTactic: homeTactic, AwayTactic: awayTactic, HomeAggr: homeAggr, AwayAggr: awayAggr}, ref, core.CompetitionCup, state.Round)
			leg2 := match.Simulate(r, away, home, match.Sides{HomeTactic: awayTactic, AwayTactic: homeTactic, HomeAggr: awayAggr, AwayAggr: homeAggr}, ref, core.CompetitionCup, state.Round)
			homeAgg := leg1.HomeGoals + leg2.AwayGoals
			awayAgg := leg1.AwayGoals + leg2.HomeGoals
			winner = decideWinner(homeName, awayName, homeAgg, awayAgg, r)
			last = leg2
		}

		results = append(results, LegResult{Home: homeName, Away: awayName, Match: last, Winner: winner})
		winners = append(winners, winner)
	}

	state.CurrentClubs = winners
	state.Round++
	if len(winners) == 1 {
		state.Finished = true
		state.Winner = winners[0]
	}
	return results
}

// decideWinner picks the higher-scoring side, breaking ties with an RNG
// coin flip per §4.4/glossary "two-legged tie".
func decideWinner(home, away string, homeGoals, awayGoals int, r *rng.Source) string {
	switch {
	case homeGoals > awayGoals:
		return home
	case awayGoals > homeGoals:
		return away
	default:
		if r.Bool() {
			return home
		}
		return away
	}
}

// Finish repeatedly advances the cup until it is finished, returning the
// leg results of every round played.
func Finish(state *core.CupState, r *rng.Source, lookup clubLookup, ref core.Referee, homeTactic, awayTactic core.Tactic, homeAggr, awayAggr core.Aggressiveness) [][]LegResult {
	var rounds [][]LegResult
	for !state.Finished {
		before := len(state.CurrentClubs)
		results := AdvanceRound(state, r, lookup, ref, homeTactic, awayTactic, homeAggr, awayAggr)
		rounds = append(rounds, results)
		if len(state.CurrentClubs) >= before && !state.Finished {
			break // defensive: avoid an infinite loop on a malformed bracket
		}
	}
	return rounds
}

// StageLabel names the stage reached for history archival (§4.5 step 4):
// "Winner", "Final", "Semifinal" or "Quarterfinal" for 1, 2, 4 or 8 clubs
// remaining. Any other count yields plain "Round", with no round number.
func StageLabel(clubsRemainingAtElimination int) string {
	switch clubsRemainingAtElimination {
	case 1:
		return "Winner"
	case 2:
		return "Final"
	case 4:
		return "Semifinal"
	case 8:
		return "Quarterfinal"
	default:
		return "Round"
	}
}
