package match

import (
	"sort"

	"github.com/apell0/managerspelet/internal/core"
)

// selectLineup builds the starting XI and bench for a club per §4.2
// step 2: preferred_lineup in order up to 11 existing players, filled
// from the remaining roster sorted by skill_open descending if short.
// Bench is bench_order ∪ remaining roster, preserving order, excluding
// the lineup.
func selectLineup(c *core.Club) (xi, bench []*core.Player) {
	used := map[int]bool{}

	for _, id := range c.PreferredLineup {
		if len(xi) >= 11 {
			break
		}
		p := c.PlayerByID(id)
		if p == nil || used[id] {
			continue
		}
		xi = append(xi, p)
		used[id] = true
	}

	if len(xi) < 11 {
		rest := make([]*core.Player, 0, len(c.Players))
		for _, p := range c.Players {
			if !used[p.ID] {
				rest = append(rest, p)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool { return rest[i].SkillOpen > rest[j].SkillOpen })
		for _, p := range rest {
			if len(xi) >= 11 {
				break
			}
			xi = append(xi, p)
			used[p.ID] = true
		}
	}

	for _, id := range c.BenchOrder {
		if used[id] {
			continue
		}
		if p := c.PlayerByID(id); p != nil {
			bench = append(bench, p)
			used[id] = true
		}
	}
	for _, p := range c.Players {
		if !used[p.ID] {
			bench = append(bench, p)
			used[p.ID] = true
		}
	}

	return xi, bench
}

// applyCaptainUplift computes §4.2 step 5's captain effect for each side
// that has its captain in the final XI: a small team-wide offensive
// uplift proportional to skill_open(captain) - avg_skill(XI), clamped.
func (st *state) applyCaptainUplift() {
	st.homeCaptainUplift = captainUplift(st.home, st.homeXI)
	st.awayCaptainUplift = captainUplift(st.away, st.awayXI)
}

func captainUplift(c *core.Club, xi []*core.Player) float64 {
	if c.CaptainID == nil || len(xi) == 0 {
		return 0
	}
	var captain *core.Player
	for _, p := range xi {
		if p.ID == *c.CaptainID {
			captain = p
			break
		}
	}
	if captain == nil {
		return 0
	}
	avg := avgSkill(xi)
	uplift := 0.02 * (float64(captain.SkillOpen) - avg)
	if uplift < 0 {
		uplift = 0
	}
	if uplift > 0.06 {
		uplift = 0.06
	}
	return uplift
}

func avgSkill(players []*core.Player) float64 {
	if len(players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range players {
		sum += p.SkillOpen
	}
	return float64(sum) / float64(len(players))
}

func keeperSkill(xi []*core.Player) int {
	for _, p := range xi {
		if p.Position == core.GK {
			return p.SkillOpen
		}
	}
	return 5
}
