// Package economy implements player valuation, the weekly economic
// cycle, junior offers, and transfer bid/purchase resolution (spec §4.6).
package economy

import (
	"math"

	"github.com/apell0/managerspelet/internal/core"
)

const minValueSEK int64 = 50_000

// Valuate computes §4.6's value_sek formula from a player's current
// attributes and season stats (stats may be nil for a player with none
// recorded yet).
func Valuate(p *core.Player, stats *core.PlayerSeasonStats) int64 {
	base := 400_000.0 * math.Max(1, float64(p.SkillOpen))
	v := base * ageFactor(p.Age) * formFactor(p) * traitMultiplier(p) * statsBonus(stats)
	if p.Position == core.GK {
		v *= 0.9
	}
	val := int64(math.Round(v))
	if val < minValueSEK {
		val = minValueSEK
	}
	return val
}

func ageFactor(age int) float64 {
	switch {
	case age <= 20:
		return 1.35
	case age <= 23:
		return 1.15
	case age <= 28:
		return 1.0
	case age <= 31:
		return 0.85
	default:
		return 0.70
	}
}

func formFactor(p *core.Player) float64 {
	return 0.85 + 0.15*(float64(p.FormNow+p.FormSeason)/20.0)
}

func traitMultiplier(p *core.Player) float64 {
	m := 1.0
	for _, t := range p.Traits {
		switch t {
		case core.TraitLeader, core.TraitIntelligent:
			m *= 1.08
		case core.TraitFast:
			m *= 1.05
		case core.TraitPenaltySpec, core.TraitFreekickSpec:
			m *= 1.04
		case core.TraitInjuryProne:
			m *= 0.90
		case core.TraitInconsistent:
			m *= 0.80
		}
	}
	return m
}

func statsBonus(stats *core.PlayerSeasonStats) float64 {
	if stats == nil {
		return 1.0
	}
	bonus := 1.0 + 0.02*float64(stats.Goals) + 0.01*float64(stats.Assists) + 0.03*(stats.RatingAvg()-6.0)
	if bonus < 0.8 {
		bonus = 0.8
	}
	if bonus > 1.6 {
		bonus = 1.6
	}
	return bonus
}

// RevalueAll recomputes value_sek for every player in clubs, using the
// season stats map (keyed by player id) where present.
func RevalueAll(clubs []*core.Club, seasonStats map[int]*core.PlayerSeasonStats) {
	for _, c := range clubs {
		for _, p := range c.Players {
			p.ValueSEK = Valuate(p, seasonStats[p.ID])
		}
	}
}
