package match

import "github.com/apell0/managerspelet/internal/core"

const (
	baseInjuryRisk       = 0.003
	injuryProneExtraRisk = 0.010
)

// pendingSub is one substitution event, whether triggered by an injury or
// by a pre-planned rule, queued for processing in minute order.
type pendingSub struct {
	minute      int
	playerOutID int
	playerInID  int // 0 = not yet resolved, resolved against the bench at processing time
	onInjury    bool
}

// scheduleInjuries rolls pre-match injuries for a side's starters (§4.2
// step 3) and queues the resulting substitutions for runSubstitutionSchedule.
func (st *state) scheduleInjuries(c *core.Club, isHome bool) {
	xi := st.sideXI(isHome)
	for _, p := range xi {
		risk := baseInjuryRisk
		if p.HasTrait(core.TraitInjuryProne) {
			risk += injuryProneExtraRisk
		}
		if st.r.Chance(risk) {
			minute := 10 + st.r.IntN(76) // [10, 85]
			st.addInjurySub(c, isHome, p.ID, minute)
		}
	}
}

func (st *state) addInjurySub(c *core.Club, isHome bool, playerOutID, minute int) {
	team := c.Name
	st.events = append(st.events, core.MatchEvent{
		Minute: minute, Type: core.EventInjury, Team: team,
		PlayerID: playerOutID, PlayerName: playerName(c, playerOutID),
	})
	if isHome {
		st.homeSubs = append(st.homeSubs, pendingSub{minute: minute, playerOutID: playerOutID, onInjury: true})
	} else {
		st.awaySubs = append(st.awaySubs, pendingSub{minute: minute, playerOutID: playerOutID, onInjury: true})
	}
}

func playerName(c *core.Club, id int) string {
	if p := c.PlayerByID(id); p != nil {
		return p.Name()
	}
	return ""
}

func (st *state) sideXI(isHome bool) []*core.Player {
	if isHome {
		return st.homeXI
	}
	return st.awayXI
}
