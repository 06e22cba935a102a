package contract

import (
	"sort"

	"github.com/apell0/managerspelet/internal/core"
)

// playerLookup resolves a player id to its owning club and struct, built
// once per projection so leaders/best-eleven don't re-scan the league.
type playerLookup struct {
	players map[int]*core.Player
	clubOf  map[int]*core.Club
}

func newPlayerLookup(league *core.League) *playerLookup {
	l := &playerLookup{players: map[int]*core.Player{}, clubOf: map[int]*core.Club{}}
	for _, c := range league.AllClubs() {
		for _, p := range c.Players {
			l.players[p.ID] = p
			l.clubOf[p.ID] = c
		}
	}
	return l
}

// buildLeaders ranks the top 10 players by goals, assists, goals+assists
// ("points", spec §4.8), and clean sheets from the current season's
// accumulator.
func buildLeaders(lookup *playerLookup, teamIDs map[string]string, seasonPlayers map[int]*core.PlayerSeasonStats) LeadersView {
	type row struct {
		id, goals, assists, points, cleanSheets int
	}
	var rows []row
	for pid, s := range seasonPlayers {
		rows = append(rows, row{pid, s.Goals, s.Assists, s.Goals + s.Assists, s.CleanSheets})
	}

	top := func(by func(row) int) []LeaderEntry {
		sorted := append([]row(nil), rows...)
		sort.SliceStable(sorted, func(i, j int) bool { return by(sorted[i]) > by(sorted[j]) })
		if len(sorted) > 10 {
			sorted = sorted[:10]
		}
		out := make([]LeaderEntry, 0, len(sorted))
		for _, r := range sorted {
			if by(r) <= 0 {
				continue
			}
			p := lookup.players[r.id]
			if p == nil {
				continue
			}
			club := lookup.clubOf[r.id]
			out = append(out, LeaderEntry{
				PlayerID: PlayerID(r.id),
				Name:     p.Name(),
				TeamID:   teamIDs[club.Name],
				Value:    by(r),
			})
		}
		return out
	}

	return LeadersView{
		Goals:       top(func(r row) int { return r.goals }),
		Assists:     top(func(r row) int { return r.assists }),
		Points:      top(func(r row) int { return r.points }),
		CleanSheets: top(func(r row) int { return r.cleanSheets }),
	}
}

// bestElevenSlots lists the best-eleven's required shape: 1 GK, 4 DF, 4
// MF, 2 FW (spec §4.8).
var bestElevenSlots = []struct {
	pos   core.Position
	count int
}{
	{core.GK, 1}, {core.DF, 4}, {core.MF, 4}, {core.FW, 2},
}

// buildBestEleven picks, per position, the highest rating_avg players from
// the current season's accumulator; the single highest rating across the
// whole XI is captain.
func buildBestEleven(lookup *playerLookup, seasonPlayers map[int]*core.PlayerSeasonStats) []BestElevenSlot {
	type candidate struct {
		id  int
		avg float64
	}
	byPosition := map[core.Position][]candidate{}
	for pid, s := range seasonPlayers {
		if s.RatingCount == 0 {
			continue
		}
		p := lookup.players[pid]
		if p == nil {
			continue
		}
		byPosition[p.Position] = append(byPosition[p.Position], candidate{pid, s.RatingAvg()})
	}
	for pos := range byPosition {
		sort.SliceStable(byPosition[pos], func(i, j int) bool {
			return byPosition[pos][i].avg > byPosition[pos][j].avg
		})
	}

	var slots []BestElevenSlot
	bestAvg := -1.0
	bestIdx := -1
	for _, spec := range bestElevenSlots {
		picks := byPosition[spec.pos]
		for i := 0; i < spec.count && i < len(picks); i++ {
			c := picks[i]
			p := lookup.players[c.id]
			slots = append(slots, BestElevenSlot{
				PlayerID:  PlayerID(c.id),
				Name:      p.Name(),
				Position:  spec.pos,
				RatingAvg: c.avg,
			})
			if c.avg > bestAvg {
				bestAvg = c.avg
				bestIdx = len(slots) - 1
			}
		}
	}
	if bestIdx >= 0 {
		slots[bestIdx].IsCaptain = true
	}
	return slots
}
