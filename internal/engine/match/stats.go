package match

import "github.com/apell0/managerspelet/internal/core"

// synthesizeShotsAndPossession derives shot counts, saves, corners and
// possession for both sides from the xG figures already drawn, per §4.2
// step 8. Shots on target are floored so a side never records fewer
// shots on target than goals scored.
func (st *state) synthesizeShotsAndPossession(homeXG, awayXG float64) {
	homeShots := shotsFromXG(st.r, homeXG, st.homeGoals)
	awayShots := shotsFromXG(st.r, awayXG, st.awayGoals)

	st.homeStats.Shots = homeShots.total
	st.homeStats.ShotsOn = homeShots.onTarget
	st.awayStats.Shots = awayShots.total
	st.awayStats.ShotsOn = awayShots.onTarget

	st.homeStats.Saves = savesFromShots(homeShots.onTarget, st.homeGoals, keeperSkill(st.awayXI))
	st.awayStats.Saves = savesFromShots(awayShots.onTarget, st.awayGoals, keeperSkill(st.homeXI))

	st.homeStats.ShotsAgainst = awayShots.total
	st.awayStats.ShotsAgainst = homeShots.total

	st.homeStats.Corners = cornersFromShots(st.r, homeShots.total)
	st.awayStats.Corners = cornersFromShots(st.r, awayShots.total)

	homePoss, awayPoss := possessionSplit(st.r, avgSkill(st.homeXI)-avgSkill(st.awayXI), homeShots.total, awayShots.total)
	st.homeStats.Possession = homePoss
	st.awayStats.Possession = awayPoss
}

type shotTally struct {
	total    int
	onTarget int
}

func shotsFromXG(r interface {
	TruncatedGaussian(mean, stddev, lo, hi float64) float64
}, xg float64, goals int) shotTally {
	mean := 10 + 2*(xg-1)
	total := int(r.TruncatedGaussian(mean, 3, 2, 30) + 0.5)
	if total < goals {
		total = goals
	}
	onTargetFrac := 0.45
	onTarget := int(float64(total)*onTargetFrac + 0.5)
	if onTarget < goals {
		onTarget = goals
	}
	if onTarget > total {
		onTarget = total
	}
	return shotTally{total: total, onTarget: onTarget}
}

func savesFromShots(shotsOn, goals, keeperSkillVal int) int {
	pool := shotsOn - goals
	if pool <= 0 {
		return 0
	}
	saveRate := 0.5 + 0.02*(float64(keeperSkillVal)-5)
	if saveRate < 0.2 {
		saveRate = 0.2
	}
	if saveRate > 0.95 {
		saveRate = 0.95
	}
	return int(float64(pool)*saveRate + 0.5)
}

func cornersFromShots(r interface{ Uniform(lo, hi float64) float64 }, shots int) int {
	frac := r.Uniform(0.15, 0.30)
	return int(float64(shots)*frac + 0.5)
}

// possessionSplit computes §4.2 step 8's possession split: a 50/50 base
// shifted by skill differential and shot-share differential, clamped to
// [30,70] and normalised to sum to 100.
func possessionSplit(r interface{ Gaussian(mean, stddev float64) float64 }, skillDelta float64, homeShots, awayShots int) (home, away float64) {
	totalShots := homeShots + awayShots
	shotShareDelta := 0.0
	if totalShots > 0 {
		shotShareDelta = float64(homeShots-awayShots) / float64(totalShots)
	}
	home = 50 + 8*skillDelta + 4*shotShareDelta + r.Gaussian(0, 1.5)
	if home < 30 {
		home = 30
	}
	if home > 70 {
		home = 70
	}
	away = 100 - home
	return home, away
}
