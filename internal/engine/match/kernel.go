// Package match implements the Poisson-based match simulation kernel
// (spec §4.2): lineup selection, substitution scheduling, expected-goals
// and goal synthesis, shot/card/penalty synthesis, and per-player rating
// synthesis. Simulate is total — it never errors for a well-formed pair
// of clubs, even with empty rosters.
package match

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

// Sides bundles the per-side inputs the kernel consumes beyond the club
// roster itself.
type Sides struct {
	HomeTactic core.Tactic
	AwayTactic core.Tactic
	HomeAggr   core.Aggressiveness
	AwayAggr   core.Aggressiveness
}

// state is the kernel's working context for one simulation, threaded
// through the pipeline of unexported steps below.
type state struct {
	r   *rng.Source
	ref core.Referee

	home, away *core.Club
	sides      Sides

	homeXI, homeBench []*core.Player
	awayXI, awayBench []*core.Player

	homeMinutes map[int]int
	awayMinutes map[int]int

	homeSubs []pendingSub
	awaySubs []pendingSub

	events []core.MatchEvent

	homeGoals, awayGoals int
	halftimeHome, halftimeAway int

	homeStats, awayStats core.TeamMatchStats

	homeCaptainUplift, awayCaptainUplift float64
}

// Simulate runs one full match and returns its immutable record. round
// and competition are stamped onto the returned record as-is; the
// caller owns stats aggregation (spec §4.3) and appending the record to
// the match log.
func Simulate(r *rng.Source, home, away *core.Club, sides Sides, ref core.Referee, competition core.Competition, round int) *core.MatchRecord {
	core.ResolveRefereeName(&ref, home.Name, away.Name)

	st := &state{
		r:    r,
		ref:  ref,
		home: home, away: away,
		sides:       sides,
		homeMinutes: map[int]int{},
		awayMinutes: map[int]int{},
	}

	st.homeXI, st.homeBench = selectLineup(home)
	st.awayXI, st.awayBench = selectLineup(away)

	st.applyCaptainUplift()

	st.scheduleInjuries(home, true)
	st.scheduleInjuries(away, false)

	st.runSubstitutionSchedule(home, true)
	st.runSubstitutionSchedule(away, false)

	homeXG := st.expectedGoals(true)
	awayXG := st.expectedGoals(false)

	st.homeGoals = r.Poisson(homeXG)
	st.awayGoals = r.Poisson(awayXG)

	st.synthesizeShotsAndPossession(homeXG, awayXG)
	st.synthesizeGoalsAndAssists()
	st.synthesizeFoulsCardsPenalties()

	st.halftimeHome = halftimeGoals(r, st.homeGoals)
	st.halftimeAway = halftimeGoals(r, st.awayGoals)

	ratings := st.synthesizeRatings()

	rec := &core.MatchRecord{
		Competition:  competition,
		Round:        round,
		HomeName:     home.Name,
		AwayName:     away.Name,
		HomeGoals:    st.homeGoals,
		AwayGoals:    st.awayGoals,
		HalftimeHome: st.halftimeHome,
		HalftimeAway: st.halftimeAway,
		Events:       st.events,
		RatingsByPlayer: ratings,
		HomeLineup:   playerIDs(st.homeXI),
		AwayLineup:   playerIDs(st.awayXI),
		HomeBench:    playerIDs(st.homeBench),
		AwayBench:    playerIDs(st.awayBench),
		MinutesPlayedHome: st.homeMinutes,
		MinutesPlayedAway: st.awayMinutes,
		FormationHome: formationString(st.homeXI),
		FormationAway: formationString(st.awayXI),
		HomeStats: st.homeStats,
		AwayStats: st.awayStats,
		Tactic: core.TacticReport{
			Home:               sides.HomeTactic,
			Away:                sides.AwayTactic,
			HomeAggressiveness: sides.HomeAggr,
			AwayAggressiveness: sides.AwayAggr,
		},
		Referee:      ref,
		HomeDarkArts: sides.HomeTactic.DarkArts,
		AwayDarkArts: sides.AwayTactic.DarkArts,
	}

	rec.HomeUnitRatings = unitRatings(st.homeXI, ratings)
	rec.AwayUnitRatings = unitRatings(st.awayXI, ratings)
	rec.HomeMOTM = manOfTheMatch(st.homeXI, ratings, st.events, home.Name)
	rec.AwayMOTM = manOfTheMatch(st.awayXI, ratings, st.events, away.Name)

	return rec
}

func playerIDs(players []*core.Player) []int {
	ids := make([]int, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

func formationString(xi []*core.Player) string {
	counts := map[core.Position]int{}
	for _, p := range xi {
		counts[p.Position]++
	}
	if len(xi) == 0 {
		return ""
	}
	return intStr(counts[core.DF]) + "-" + intStr(counts[core.MF]) + "-" + intStr(counts[core.FW])
}

func intStr(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func halftimeGoals(r *rng.Source, fullTime int) int {
	if fullTime == 0 {
		return 0
	}
	ht := 0
	for i := 0; i < fullTime; i++ {
		if r.Chance(0.45) {
			ht++
		}
	}
	if ht > fullTime {
		ht = fullTime
	}
	return ht
}
