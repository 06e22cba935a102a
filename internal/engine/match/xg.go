package match

const (
	baseHomeXG = 1.35
	baseAwayXG = 1.15
	homeBonus  = 0.12
	skillSpread = 0.18
)

// expectedGoals computes §4.2 step 6's xG for one side.
func (st *state) expectedGoals(isHome bool) float64 {
	var base, bonus, skillDelta float64
	var ownTactic, oppTactic = st.sides.HomeTactic, st.sides.AwayTactic
	var ownXI, oppXI = st.homeXI, st.awayXI
	var uplift = st.homeCaptainUplift

	homeSkill := avgSkill(st.homeXI)
	awaySkill := avgSkill(st.awayXI)

	if isHome {
		base = baseHomeXG
		bonus = homeBonus
		skillDelta = homeSkill - awaySkill
	} else {
		base = baseAwayXG
		bonus = 0
		skillDelta = awaySkill - homeSkill
		ownTactic, oppTactic = st.sides.AwayTactic, st.sides.HomeTactic
		ownXI, oppXI = st.awayXI, st.homeXI
		uplift = st.awayCaptainUplift
	}
	_ = ownXI

	keeperEffect := -0.06 * (float64(keeperSkill(oppXI)) - 5)

	xg := base + skillSpread*skillDelta + bonus + ownTactic.Offset() + keeperEffect
	xg *= ownTactic.Tempo
	if oppTactic.OffsideTrap {
		xg *= 0.94
	}

	if uplift > 0.06 {
		uplift = 0.06
	}
	xg *= 1 + uplift

	if xg < 0.2 {
		xg = 0.2
	}
	if xg > 3.2 {
		xg = 3.2
	}
	return xg
}
