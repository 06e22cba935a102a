package season

import (
	"sort"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/cup"
	"github.com/apell0/managerspelet/internal/engine/economy"
	"github.com/apell0/managerspelet/internal/engine/rng"
	"github.com/apell0/managerspelet/internal/engine/schedule"
)

// PromoteRelegate applies §4.5 step 3 across every adjacent pair of
// levels in the league, using table to rank clubs within each level.
func PromoteRelegate(league *core.League, table map[string]*core.TableRow) {
	max := league.MaxLevel()
	for level := 1; level < max; level++ {
		upperDivs := league.DivisionsAtLevel(level)
		lowerDivs := league.DivisionsAtLevel(level + 1)
		if len(upperDivs) == 0 || len(lowerDivs) == 0 {
			continue
		}
		promoteN := league.Rules.PromoteCount
		relegateN := league.Rules.RelegateCount
		n := promoteN
		if relegateN < n {
			n = relegateN
		}
		if n <= 0 {
			continue
		}

		upperClubs := clubsOf(upperDivs)
		lowerClubs := clubsOf(lowerDivs)
		rankByTable(upperClubs, table)
		rankByTable(lowerClubs, table)

		bottomOfUpper := upperClubs[maxInt(0, len(upperClubs)-n):]
		topOfLower := lowerClubs[:minInt(n, len(lowerClubs))]

		for i := 0; i < len(bottomOfUpper) && i < len(topOfLower); i++ {
			down := bottomOfUpper[i]
			up := topOfLower[i]
			moveClub(upperDivs, down, lowerDivs)
			moveClub(lowerDivs, up, upperDivs)
		}
	}
}

func clubsOf(divs []*core.Division) []*core.Club {
	var out []*core.Club
	for _, d := range divs {
		out = append(out, d.Clubs...)
	}
	return out
}

// rankByTable sorts clubs by (points, gd, gf, name) descending/ascending
// per §4.5 step 3.
func rankByTable(clubs []*core.Club, table map[string]*core.TableRow) {
	sort.SliceStable(clubs, func(i, j int) bool {
		ri, rj := table[clubs[i].Name], table[clubs[j].Name]
		var pi, pj, gdi, gdj, gfi, gfj int
		if ri != nil {
			pi, gdi, gfi = ri.Points, ri.GoalDiff(), ri.GoalsFor
		}
		if rj != nil {
			pj, gdj, gfj = rj.Points, rj.GoalDiff(), rj.GoalsFor
		}
		if pi != pj {
			return pi > pj
		}
		if gdi != gdj {
			return gdi > gdj
		}
		if gfi != gfj {
			return gfi > gfj
		}
		return clubs[i].Name < clubs[j].Name
	})
}

// moveClub removes c from its current division (searched across from)
// and appends it to the division in to with the fewest clubs, ties
// broken alphabetically.
func moveClub(from []*core.Division, c *core.Club, to []*core.Division) {
	for _, d := range from {
		for i, cc := range d.Clubs {
			if cc.Name == c.Name {
				d.Clubs = append(d.Clubs[:i], d.Clubs[i+1:]...)
				break
			}
		}
	}
	if len(to) == 0 {
		return
	}
	sort.SliceStable(to, func(i, j int) bool {
		if len(to[i].Clubs) != len(to[j].Clubs) {
			return len(to[i].Clubs) < len(to[j].Clubs)
		}
		return to[i].Name < to[j].Name
	})
	to[0].Clubs = append(to[0].Clubs, c)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ArchiveHistoryAndTrophies applies §4.5 step 4: append a SeasonRecord to
// every club's history and push a trophy string for the top club of each
// division.
func ArchiveHistoryAndTrophies(league *core.League, table map[string]*core.TableRow, season int, cupState *core.CupState, cupEliminationRound map[string]int) {
	for _, d := range league.Divisions {
		ranked := append([]*core.Club(nil), d.Clubs...)
		rankByTable(ranked, table)
		for pos, c := range ranked {
			cupResult := "Round 1"
			if cupState != nil {
				if remaining, ok := cupEliminationRound[c.Name]; ok {
					cupResult = cup.StageLabel(remaining)
				}
			}
			c.History = append(c.History, core.SeasonRecord{
				Season: season, LeaguePosition: pos + 1, CupResult: cupResult,
			})
			if pos == 0 {
				label := divisionChampionLabel(d)
				c.Trophies = append(c.Trophies, label)
			}
		}
	}
}

func divisionChampionLabel(d *core.Division) string {
	if d.Level == 1 {
		return "League Champions"
	}
	return d.Name + " Champions"
}

// ArchiveStats applies §4.5 step 5: snapshot season maps into the
// history-by-season maps, bump the career maps' Seasons counter for the
// entries that appeared this season (career totals are already folded
// match by match), then clear the season maps.
func ArchiveStats(season int,
	seasonPlayers map[int]*core.PlayerSeasonStats, careerPlayers map[int]*core.PlayerSeasonStats,
	seasonClubs map[string]*core.ClubSeasonStats, careerClubs map[string]*core.ClubSeasonStats,
	playerHistory map[int]map[int]*core.PlayerSeasonStats, clubHistory map[int]map[string]*core.ClubSeasonStats,
) {
	snapP := make(map[int]*core.PlayerSeasonStats, len(seasonPlayers))
	for id, s := range seasonPlayers {
		cp := *s
		snapP[id] = &cp
		if cs := careerPlayers[id]; cs != nil {
			cs.Seasons++
		}
	}
	playerHistory[season] = snapP

	snapC := make(map[string]*core.ClubSeasonStats, len(seasonClubs))
	for name, s := range seasonClubs {
		cc := *s
		snapC[name] = &cc
		if cs := careerClubs[name]; cs != nil {
			cs.Seasons++
		}
	}
	clubHistory[season] = snapC

	for id := range seasonPlayers {
		delete(seasonPlayers, id)
	}
	for name := range seasonClubs {
		delete(seasonClubs, name)
	}
}

// RolloverResult carries what changed during rollover for the caller to
// persist onto the world (new fixtures per division, fresh junior offers
// per club).
type RolloverResult struct {
	FixturesByDivision map[string][]core.Match
	JuniorOffers       map[string][]core.JuniorOffer
}

// Rollover applies §4.5 step 6 for newSeason: rebuild fixtures for every
// division, roll fresh junior offers per club. Callers are responsible
// for setting the season to newSeason and resetting current_round,
// table_snapshot, and cup_state on the world struct. nextID is the career's persisted id counter
// (world.Meta.NextGeneratedPlayerID) used to mint the junior offers.
func Rollover(r *rng.Source, league *core.League, newSeason int, nextID *int) RolloverResult {
	res := RolloverResult{
		FixturesByDivision: map[string][]core.Match{},
		JuniorOffers:       map[string][]core.JuniorOffer{},
	}
	for _, d := range league.Divisions {
		names := make([]string, len(d.Clubs))
		for i, c := range d.Clubs {
			names[i] = c.Name
		}
		res.FixturesByDivision[d.Name] = schedule.BuildNames(names, league.Rules.DoubleRound)
		for _, c := range d.Clubs {
			res.JuniorOffers[c.Name] = economy.RollJuniorOffers(r, newSeason, nextID)
		}
	}
	return res
}
