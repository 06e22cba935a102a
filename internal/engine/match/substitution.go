package match

import (
	"sort"

	"github.com/apell0/managerspelet/internal/core"
)

// runSubstitutionSchedule resolves a side's queued injury subs against
// the club's on-injury substitution rules (or a same-position / any
// bench fallback), merges in the club's non-injury substitution_plan
// entries in minute order, then walks the combined timeline crediting
// minutes and emitting SUBSTITUTION events (§4.2 step 4).
func (st *state) runSubstitutionSchedule(c *core.Club, isHome bool) {
	subs := st.pendingFor(isHome)

	for i := range subs {
		if !subs[i].onInjury {
			continue
		}
		subs[i].playerInID = resolveInjuryReplacement(c, subs[i].playerOutID, st.benchPool(isHome))
	}

	for _, rule := range c.SubstitutionPlan {
		if rule.OnInjuryOnly {
			continue
		}
		subs = append(subs, pendingSub{
			minute: rule.Minute, playerOutID: rule.PlayerOutID,
			playerInID: rule.PlayerInID, onInjury: false,
		})
	}

	sort.SliceStable(subs, func(i, j int) bool { return subs[i].minute < subs[j].minute })

	onPitch := append([]*core.Player(nil), st.sideXI(isHome)...)
	bench := st.benchPool(isHome)
	minutes := st.minutesFor(isHome)
	prevMinute := 0

	for _, s := range subs {
		m := s.minute
		if m > 90 {
			m = 90
		}
		if m < prevMinute {
			m = prevMinute
		}
		creditMinutes(onPitch, minutes, m-prevMinute)

		outIdx := findPlayerIndex(onPitch, s.playerOutID)
		if outIdx < 0 {
			// Player already off (double sub, already subbed, or never started);
			// nothing left to swap.
			prevMinute = m
			continue
		}

		inPlayer, bench2 := resolveSubIn(onPitch[outIdx], s.playerInID, bench)
		bench = bench2
		if inPlayer == nil {
			prevMinute = m
			continue
		}

		st.events = append(st.events, core.MatchEvent{
			Minute: m, Type: core.EventSubstitution, Team: c.Name,
			PlayerOutID: onPitch[outIdx].ID, PlayerOutName: onPitch[outIdx].Name(),
			PlayerInID: inPlayer.ID, PlayerInName: inPlayer.Name(),
		})
		onPitch[outIdx] = inPlayer
		prevMinute = m
	}

	creditMinutes(onPitch, minutes, 90-prevMinute)
	st.setFinalXI(isHome, onPitch)
}

func (st *state) pendingFor(isHome bool) []pendingSub {
	if isHome {
		return st.homeSubs
	}
	return st.awaySubs
}

func (st *state) benchPool(isHome bool) []*core.Player {
	if isHome {
		return st.homeBench
	}
	return st.awayBench
}

func (st *state) minutesFor(isHome bool) map[int]int {
	if isHome {
		return st.homeMinutes
	}
	return st.awayMinutes
}

func (st *state) setFinalXI(isHome bool, xi []*core.Player) {
	if isHome {
		st.homeXI = xi
	} else {
		st.awayXI = xi
	}
}

func creditMinutes(onPitch []*core.Player, minutes map[int]int, delta int) {
	if delta <= 0 {
		return
	}
	for _, p := range onPitch {
		if p == nil {
			continue
		}
		minutes[p.ID] += delta
	}
}

func findPlayerIndex(players []*core.Player, id int) int {
	for i, p := range players {
		if p != nil && p.ID == id {
			return i
		}
	}
	return -1
}

// resolveInjuryReplacement matches an injured player against the club's
// on-injury substitution rules (by player_out_id, then by position),
// falling back to a same-position bench player, then any bench player.
func resolveInjuryReplacement(c *core.Club, playerOutID int, bench []*core.Player) int {
	outPlayer := c.PlayerByID(playerOutID)

	for _, rule := range c.SubstitutionPlan {
		if !rule.OnInjuryOnly {
			continue
		}
		if rule.PlayerOutID == playerOutID {
			return rule.PlayerInID
		}
	}
	if outPlayer != nil {
		for _, rule := range c.SubstitutionPlan {
			if !rule.OnInjuryOnly {
				continue
			}
			repl := c.PlayerByID(rule.PlayerInID)
			if repl != nil && c.PlayerByID(rule.PlayerOutID) != nil &&
				c.PlayerByID(rule.PlayerOutID).Position == outPlayer.Position {
				return rule.PlayerInID
			}
		}
		for _, p := range bench {
			if p.Position == outPlayer.Position {
				return p.ID
			}
		}
	}
	if len(bench) > 0 {
		return bench[0].ID
	}
	return 0
}

// resolveSubIn finds the incoming player by id, then falls back to
// matching the outgoing player's position among the bench, then the
// first available bench player. Returns the resolved player and the
// bench with that player removed.
func resolveSubIn(outPlayer *core.Player, wantID int, bench []*core.Player) (*core.Player, []*core.Player) {
	if wantID != 0 {
		for i, p := range bench {
			if p.ID == wantID {
				return p, removeBenchIdx(bench, i)
			}
		}
	}
	if outPlayer != nil {
		for i, p := range bench {
			if p.Position == outPlayer.Position {
				return p, removeBenchIdx(bench, i)
			}
		}
	}
	if len(bench) > 0 {
		return bench[0], removeBenchIdx(bench, 0)
	}
	return nil, bench
}

func removeBenchIdx(bench []*core.Player, idx int) []*core.Player {
	out := append([]*core.Player(nil), bench[:idx]...)
	return append(out, bench[idx+1:]...)
}
