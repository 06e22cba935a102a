package contract

import (
	"sort"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/stats"
)

// buildStandings rebuilds the total/home/away table views from the match
// log (spec §6's `standings` key), each sorted per spec §4.8's ordering
// rule (points desc, goal_diff desc, goals_for desc).
func buildStandings(matchLog []*core.MatchRecord) StandingsView {
	total := stats.RebuildTable(matchLog)

	home := map[string]*core.TableRow{}
	away := map[string]*core.TableRow{}
	for _, rec := range matchLog {
		if rec.Competition != core.CompetitionLeague {
			continue
		}
		foldOneSided(home, rec.HomeName, rec.HomeGoals, rec.AwayGoals)
		foldOneSided(away, rec.AwayName, rec.AwayGoals, rec.HomeGoals)
	}
	for _, row := range home {
		row.RecomputePoints()
	}
	for _, row := range away {
		row.RecomputePoints()
	}

	return StandingsView{
		Total: derefSorted(stats.SortedTable(total)),
		Home:  derefSorted(sortRows(home)),
		Away:  derefSorted(sortRows(away)),
	}
}

func foldOneSided(table map[string]*core.TableRow, name string, gf, ga int) {
	row := table[name]
	if row == nil {
		row = &core.TableRow{ClubName: name}
		table[name] = row
	}
	row.Played++
	row.GoalsFor += gf
	row.GoalsAgainst += ga
	switch {
	case gf > ga:
		row.Wins++
	case gf == ga:
		row.Draws++
	default:
		row.Losses++
	}
}

func sortRows(table map[string]*core.TableRow) []*core.TableRow {
	rows := make([]*core.TableRow, 0, len(table))
	for _, r := range table {
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.ClubName < b.ClubName
	})
	return rows
}

func derefSorted(rows []*core.TableRow) []core.TableRow {
	out := make([]core.TableRow, len(rows))
	for i, r := range rows {
		out[i] = *r
	}
	return out
}
