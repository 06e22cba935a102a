package match

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

var scorerWeightByPosition = map[core.Position]float64{
	core.FW: 6, core.MF: 3, core.DF: 1.5, core.GK: 0.3,
}

var assistWeightByPosition = map[core.Position]float64{
	core.MF: 4, core.FW: 3, core.DF: 2, core.GK: 1,
}

// synthesizeGoalsAndAssists picks a scorer (and, with probability 0.60,
// an assister) for each goal drawn in the Poisson step, per §4.2 step 9.
func (st *state) synthesizeGoalsAndAssists() {
	st.scoreGoalsFor(true, st.homeGoals, st.homeXI, st.home.Name)
	st.scoreGoalsFor(false, st.awayGoals, st.awayXI, st.away.Name)
}

func (st *state) scoreGoalsFor(isHome bool, goals int, xi []*core.Player, teamName string) {
	for i := 0; i < goals; i++ {
		scorer := pickScorer(st.r, xi, nil)
		if scorer == nil {
			continue
		}
		minute := 1 + st.r.IntN(90)
		ev := core.MatchEvent{
			Minute: minute, Type: core.EventGoal, Team: teamName,
			PlayerID: scorer.ID, PlayerName: scorer.Name(),
		}
		if st.r.Chance(0.60) {
			if assister := pickAssister(st.r, xi, scorer); assister != nil {
				ev.AssistPlayerID = assister.ID
				ev.AssistPlayerName = assister.Name()
			}
		}
		st.events = append(st.events, ev)
	}
}

func pickScorer(r *rng.Source, xi []*core.Player, exclude *core.Player) *core.Player {
	candidates := make([]*core.Player, 0, len(xi))
	weights := make([]float64, 0, len(xi))
	for _, p := range xi {
		if exclude != nil && p.ID == exclude.ID {
			continue
		}
		w := scorerWeightByPosition[p.Position]
		w *= 0.8 + 0.02*float64(p.SkillOpen)
		if p.HasTrait(core.TraitPenaltySpec) {
			w *= 1.15
		}
		candidates = append(candidates, p)
		weights = append(weights, w)
	}
	idx := r.WeightedIndex(weights)
	if idx < 0 {
		return nil
	}
	return candidates[idx]
}

func pickAssister(r *rng.Source, xi []*core.Player, scorer *core.Player) *core.Player {
	candidates := make([]*core.Player, 0, len(xi))
	weights := make([]float64, 0, len(xi))
	for _, p := range xi {
		if p.ID == scorer.ID {
			continue
		}
		w := assistWeightByPosition[p.Position]
		if p.HasTrait(core.TraitIntelligent) {
			w *= 1.10
		}
		candidates = append(candidates, p)
		weights = append(weights, w)
	}
	idx := r.WeightedIndex(weights)
	if idx < 0 {
		return nil
	}
	return candidates[idx]
}

// penaltyTaker returns the first PenaltySpec player in xi, else a
// weighted scorer pick.
func penaltyTaker(r *rng.Source, xi []*core.Player) *core.Player {
	for _, p := range xi {
		if p.HasTrait(core.TraitPenaltySpec) {
			return p
		}
	}
	return pickScorer(r, xi, nil)
}
