package match

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

const (
	ratingBase     = 6.2
	ratingFloor    = 5.0
	ratingCeiling  = 9.5
	ratingMinMinutesFrac = 0.3

	goalRatingBonus      = 0.9
	assistRatingBonus    = 0.5
	yellowRatingPenalty  = 0.3
	redRatingPenalty     = 1.2
	ownGoalPenalty       = 0.9 // reserved: own goals are not modelled as a distinct event yet
	cleanSheetKeeperBonus = 0.4
)

// synthesizeRatings derives a per-player rating for every player who
// appeared for either side, per §4.2 step 11: a skill/form baseline with
// Gaussian noise, adjusted by that player's events, scaled down for
// players who played fewer than a full 90, and clamped to [5.0, 9.5].
func (st *state) synthesizeRatings() map[int]float64 {
	ratings := map[int]float64{}

	st.baseRatingsFor(st.homeXI, st.homeBench, st.homeMinutes, ratings)
	st.baseRatingsFor(st.awayXI, st.awayBench, st.awayMinutes, ratings)

	for _, ev := range st.events {
		switch ev.Type {
		case core.EventGoal, core.EventPenaltyGoal:
			if _, ok := ratings[ev.PlayerID]; ok {
				ratings[ev.PlayerID] += goalRatingBonus
			}
			if ev.AssistPlayerID != 0 {
				if _, ok := ratings[ev.AssistPlayerID]; ok {
					ratings[ev.AssistPlayerID] += assistRatingBonus
				}
			}
		case core.EventYellowCard:
			if _, ok := ratings[ev.PlayerID]; ok {
				ratings[ev.PlayerID] -= yellowRatingPenalty
			}
		case core.EventRedCard:
			if _, ok := ratings[ev.PlayerID]; ok {
				ratings[ev.PlayerID] -= redRatingPenalty
			}
		case core.EventPenaltyMiss:
			if _, ok := ratings[ev.PlayerID]; ok {
				ratings[ev.PlayerID] -= assistRatingBonus
			}
		}
	}

	if st.awayGoals == 0 {
		st.bonusKeeper(st.homeXI, ratings)
	}
	if st.homeGoals == 0 {
		st.bonusKeeper(st.awayXI, ratings)
	}

	for id, v := range ratings {
		if v < ratingFloor {
			v = ratingFloor
		}
		if v > ratingCeiling {
			v = ratingCeiling
		}
		ratings[id] = v
	}
	return ratings
}

func (st *state) bonusKeeper(xi []*core.Player, ratings map[int]float64) {
	for _, p := range xi {
		if p.Position == core.GK {
			if _, ok := ratings[p.ID]; ok {
				ratings[p.ID] += cleanSheetKeeperBonus
			}
			return
		}
	}
}

func (st *state) baseRatingsFor(xi, bench []*core.Player, minutes map[int]int, ratings map[int]float64) {
	for _, p := range xi {
		ratings[p.ID] = playerBaseRating(st.r, p, minutes[p.ID])
	}
	for _, p := range bench {
		if m := minutes[p.ID]; m > 0 {
			ratings[p.ID] = playerBaseRating(st.r, p, m)
		}
	}
}

func playerBaseRating(r *rng.Source, p *core.Player, minutesPlayed int) float64 {
	v := ratingBase + 0.12*(float64(p.SkillOpen)-5) + r.Gaussian(0, 0.6)
	v += 0.01 * (float64(p.FormNow) - 10)

	if p.HasTrait(core.TraitInconsistent) {
		v += r.Gaussian(0, 0.5)
	}
	if p.HasTrait(core.TraitLeader) {
		v += 0.1
	}

	frac := float64(minutesPlayed) / 90.0
	if frac < ratingMinMinutesFrac {
		frac = ratingMinMinutesFrac
	}
	if frac > 1 {
		frac = 1
	}
	return ratingBase + (v-ratingBase)*frac
}

// unitRatings averages the synthesised ratings across goalkeeper+defence,
// midfield, and attack for one side's final XI (§4.2 step 12).
func unitRatings(xi []*core.Player, ratings map[int]float64) []core.UnitRating {
	sums := map[string]float64{"Defence": 0, "Midfield": 0, "Attack": 0}
	counts := map[string]int{"Defence": 0, "Midfield": 0, "Attack": 0}

	for _, p := range xi {
		unit := unitFor(p.Position)
		sums[unit] += ratings[p.ID]
		counts[unit]++
	}

	units := []string{"Defence", "Midfield", "Attack"}
	out := make([]core.UnitRating, 0, len(units))
	for _, u := range units {
		if counts[u] == 0 {
			continue
		}
		out = append(out, core.UnitRating{Unit: u, Average: sums[u] / float64(counts[u])})
	}
	return out
}

func unitFor(pos core.Position) string {
	switch pos {
	case core.GK, core.DF:
		return "Defence"
	case core.MF:
		return "Midfield"
	default:
		return "Attack"
	}
}

// manOfTheMatch picks the side's standout performer: highest rating,
// ties broken by goals then assists then minutes played, per §4.2 step 12.
func manOfTheMatch(xi []*core.Player, ratings map[int]float64, events []core.MatchEvent, teamName string) int {
	if len(xi) == 0 {
		return 0
	}
	goals := map[int]int{}
	assists := map[int]int{}
	for _, ev := range events {
		if ev.Team != teamName {
			continue
		}
		switch ev.Type {
		case core.EventGoal, core.EventPenaltyGoal:
			goals[ev.PlayerID]++
			if ev.AssistPlayerID != 0 {
				assists[ev.AssistPlayerID]++
			}
		}
	}

	best := xi[0]
	for _, p := range xi[1:] {
		if motmLess(best, p, ratings, goals, assists) {
			best = p
		}
	}
	return best.ID
}

func motmLess(a, b *core.Player, ratings map[int]float64, goals, assists map[int]int) bool {
	if ratings[a.ID] != ratings[b.ID] {
		return ratings[a.ID] < ratings[b.ID]
	}
	if goals[a.ID] != goals[b.ID] {
		return goals[a.ID] < goals[b.ID]
	}
	if assists[a.ID] != assists[b.ID] {
		return assists[a.ID] < assists[b.ID]
	}
	return false
}
