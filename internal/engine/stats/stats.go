// Package stats folds match results into the season/career accumulators
// and rebuilds the league table snapshot (spec §4.3).
package stats

import (
	"sort"

	"github.com/apell0/managerspelet/internal/core"
)

// Maps bundles the four accumulator maps a fold touches, so callers (the
// world/service layer) don't have to thread eight separate arguments.
type Maps struct {
	SeasonPlayers map[int]*core.PlayerSeasonStats
	CareerPlayers map[int]*core.PlayerSeasonStats
	SeasonClubs   map[string]*core.ClubSeasonStats
	CareerClubs   map[string]*core.ClubSeasonStats
}

// FoldMatch updates every accumulator in m from one simulated match, per
// §4.3's bullet list, then appends the record to matchLog.
func FoldMatch(m Maps, rec *core.MatchRecord, matchLog *[]*core.MatchRecord) {
	foldClub(m.SeasonClubs, rec.HomeName, rec, true)
	foldClub(m.SeasonClubs, rec.AwayName, rec, false)
	foldClub(m.CareerClubs, rec.HomeName, rec, true)
	foldClub(m.CareerClubs, rec.AwayName, rec, false)

	foldPlayerMinutes(m.SeasonPlayers, rec.HomeName, rec.MinutesPlayedHome, rec.AwayGoals, rec)
	foldPlayerMinutes(m.SeasonPlayers, rec.AwayName, rec.MinutesPlayedAway, rec.HomeGoals, rec)
	foldPlayerMinutes(m.CareerPlayers, rec.HomeName, rec.MinutesPlayedHome, rec.AwayGoals, rec)
	foldPlayerMinutes(m.CareerPlayers, rec.AwayName, rec.MinutesPlayedAway, rec.HomeGoals, rec)

	for _, ev := range rec.Events {
		routeEvent(m.SeasonPlayers, ev)
		routeEvent(m.CareerPlayers, ev)
	}

	*matchLog = append(*matchLog, rec)
}

func foldClub(clubs map[string]*core.ClubSeasonStats, name string, rec *core.MatchRecord, isHome bool) {
	s := clubs[name]
	if s == nil {
		s = &core.ClubSeasonStats{ClubName: name}
		clubs[name] = s
	}
	own, opp := rec.HomeStats, rec.AwayStats
	gf, ga := rec.HomeGoals, rec.AwayGoals
	if !isHome {
		own, opp = rec.AwayStats, rec.HomeStats
		gf, ga = rec.AwayGoals, rec.HomeGoals
	}

	s.Played++
	s.GoalsFor += gf
	s.GoalsAgainst += ga
	switch {
	case gf > ga:
		s.Wins++
	case gf == ga:
		s.Draws++
	default:
		s.Losses++
	}
	s.Shots += own.Shots
	s.ShotsOn += own.ShotsOn
	s.Corners += own.Corners
	s.Offsides += own.Offsides
	s.Fouls += own.Fouls
	s.Saves += own.Saves
	s.ShotsAgainst += opp.Shots
	s.PossessionFor += own.Possession
	s.PossessionAgainst += opp.Possession
}

func foldPlayerMinutes(players map[int]*core.PlayerSeasonStats, clubName string, minutes map[int]int, oppGoals int, rec *core.MatchRecord) {
	for pid, mins := range minutes {
		if mins <= 0 {
			continue
		}
		s := players[pid]
		if s == nil {
			s = &core.PlayerSeasonStats{PlayerID: pid, ClubName: clubName}
			players[pid] = s
		}
		s.ClubName = clubName
		s.Appearances++
		s.MinutesPlayed += mins
		if avg, ok := rec.RatingsByPlayer[pid]; ok {
			s.RatingSum += avg
			s.RatingCount++
		}
	}
	if oppGoals == 0 {
		for pid, mins := range minutes {
			if mins > 0 {
				if s := players[pid]; s != nil {
					s.CleanSheets++
				}
			}
		}
	}
}

func routeEvent(players map[int]*core.PlayerSeasonStats, ev core.MatchEvent) {
	switch ev.Type {
	case core.EventGoal:
		bump(players, ev.PlayerID, func(s *core.PlayerSeasonStats) { s.Goals++ })
		if ev.AssistPlayerID != 0 {
			bump(players, ev.AssistPlayerID, func(s *core.PlayerSeasonStats) { s.Assists++ })
		}
	case core.EventPenaltyGoal:
		bump(players, ev.PlayerID, func(s *core.PlayerSeasonStats) {
			s.Goals++
			s.Penalties++
		})
	case core.EventPenaltyMiss:
		bump(players, ev.PlayerID, func(s *core.PlayerSeasonStats) { s.Penalties++ })
	case core.EventOffside:
		bump(players, ev.PlayerID, func(s *core.PlayerSeasonStats) { s.Offsides++ })
	case core.EventYellowCard:
		bump(players, ev.PlayerID, func(s *core.PlayerSeasonStats) { s.YellowCards++ })
	case core.EventRedCard:
		bump(players, ev.PlayerID, func(s *core.PlayerSeasonStats) { s.RedCards++ })
	case core.EventInjury:
		bump(players, ev.PlayerID, func(s *core.PlayerSeasonStats) { s.Injuries++ })
	}
}

func bump(players map[int]*core.PlayerSeasonStats, pid int, f func(*core.PlayerSeasonStats)) {
	if pid == 0 {
		return
	}
	s := players[pid]
	if s == nil {
		s = &core.PlayerSeasonStats{PlayerID: pid}
		players[pid] = s
	}
	f(s)
}

// RebuildTable recomputes the league-table snapshot from the full match
// log filtered to league fixtures, per §4.3.
func RebuildTable(matchLog []*core.MatchRecord) map[string]*core.TableRow {
	table := map[string]*core.TableRow{}
	for _, rec := range matchLog {
		if rec.Competition != core.CompetitionLeague {
			continue
		}
		foldTableRow(table, rec.HomeName, rec.HomeGoals, rec.AwayGoals)
		foldTableRow(table, rec.AwayName, rec.AwayGoals, rec.HomeGoals)
	}
	for _, row := range table {
		row.RecomputePoints()
	}
	return table
}

func foldTableRow(table map[string]*core.TableRow, name string, gf, ga int) {
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

// SortedTable returns table rows ordered by the contract's standings
// sort: points desc, goal diff desc, goals for desc, name asc.
func SortedTable(table map[string]*core.TableRow) []*core.TableRow {
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
