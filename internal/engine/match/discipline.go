package match

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

const (
	baseFoulMean      = 10.0
	baseFoulStddev    = 3.0
	darkArtsFoulMult  = 1.25
	refereeLeniencyLo = 0.75
	refereeLeniencyHi = 1.25

	yellowProbPerFoul  = 0.12
	secondYellowProb   = 0.08 // chance an already-booked player picks up another
	straightRedProb    = 0.01 // chance any single foul is a straight red

	penaltyProbPerAttack = 0.06
	penaltyScoreProb     = 0.78
)

// synthesizeFoulsCardsPenalties draws foul counts for each side (scaled
// by aggressiveness, dark arts and referee leniency), then resolves
// cards and a chance of a penalty per side, per §4.2 step 10.
func (st *state) synthesizeFoulsCardsPenalties() {
	st.homeStats.Fouls = st.foulsFor(true)
	st.awayStats.Fouls = st.foulsFor(false)

	booked := map[int]bool{}
	st.cardsFor(true, booked)
	st.cardsFor(false, booked)

	st.penaltyFor(true)
	st.penaltyFor(false)
}

func (st *state) foulsFor(isHome bool) int {
	aggr := st.sides.HomeAggr
	tactic := st.sides.HomeTactic
	if !isHome {
		aggr = st.sides.AwayAggr
		tactic = st.sides.AwayTactic
	}
	mult := aggr.Factor() * st.ref.Leniency()
	if tactic.DarkArts {
		mult *= darkArtsFoulMult
	}
	fouls := st.r.TruncatedGaussian(baseFoulMean*mult, baseFoulStddev, 0, 30)
	return int(fouls + 0.5)
}

func (st *state) cardsFor(isHome bool, booked map[int]bool) {
	xi := st.sideXI(isHome)
	stats := &st.homeStats
	team := st.home.Name
	if !isHome {
		stats = &st.awayStats
		team = st.away.Name
	}
	fouls := stats.Fouls
	for i := 0; i < fouls; i++ {
		offender := pickFoulOffender(st.r, xi)
		if offender == nil {
			continue
		}
		minute := 1 + st.r.IntN(90)

		if st.r.Chance(straightRedProb) {
			st.events = append(st.events, core.MatchEvent{
				Minute: minute, Type: core.EventRedCard, Team: team,
				PlayerID: offender.ID, PlayerName: offender.Name(),
			})
			stats.RedCards++
			continue
		}
		if !st.r.Chance(yellowProbPerFoul) {
			continue
		}
		if booked[offender.ID] && st.r.Chance(secondYellowProb) {
			st.events = append(st.events, core.MatchEvent{
				Minute: minute, Type: core.EventRedCard, Team: team,
				PlayerID: offender.ID, PlayerName: offender.Name(),
			})
			stats.RedCards++
			continue
		}
		if booked[offender.ID] {
			continue
		}
		booked[offender.ID] = true
		st.events = append(st.events, core.MatchEvent{
			Minute: minute, Type: core.EventYellowCard, Team: team,
			PlayerID: offender.ID, PlayerName: offender.Name(),
		})
		stats.YellowCards++
	}
}

func pickFoulOffender(r *rng.Source, xi []*core.Player) *core.Player {
	weights := make([]float64, len(xi))
	for i, p := range xi {
		w := 1.0
		if p.HasTrait(core.TraitAggressive) || p.HasTrait(core.TraitCardProne) {
			w *= 1.8
		}
		weights[i] = w
	}
	idx := r.WeightedIndex(weights)
	if idx < 0 {
		return nil
	}
	return xi[idx]
}

// penaltyFor rolls a per-side chance of winning a penalty. The taker comes
// from the side's own XI via penaltyTaker (the first PenaltySpec player,
// otherwise a weighted scorer pick); a PenaltySpec taker adds 0.10 to the
// conversion chance, capped at 0.97. A converted penalty also counts as a
// shot on target (§4.2 step 10).
func (st *state) penaltyFor(isHome bool) {
	xi := st.sideXI(isHome)
	team := st.home.Name
	if !isHome {
		team = st.away.Name
	}
	if !st.r.Chance(penaltyProbPerAttack) {
		return
	}
	taker := penaltyTaker(st.r, xi)
	if taker == nil {
		return
	}
	minute := 1 + st.r.IntN(90)
	scoreProb := penaltyScoreProb
	if taker.HasTrait(core.TraitPenaltySpec) {
		scoreProb += 0.10
	}
	if scoreProb > 0.97 {
		scoreProb = 0.97
	}
	if st.r.Chance(scoreProb) {
		st.events = append(st.events, core.MatchEvent{
			Minute: minute, Type: core.EventPenaltyGoal, Team: team,
			PlayerID: taker.ID, PlayerName: taker.Name(),
		})
		if isHome {
			st.homeGoals++
			st.homeStats.Shots++
			st.homeStats.ShotsOn++
			st.awayStats.ShotsAgainst++
		} else {
			st.awayGoals++
			st.awayStats.Shots++
			st.awayStats.ShotsOn++
			st.homeStats.ShotsAgainst++
		}
	} else {
		st.events = append(st.events, core.MatchEvent{
			Minute: minute, Type: core.EventPenaltyMiss, Team: team,
			PlayerID: taker.ID, PlayerName: taker.Name(),
		})
	}
}
