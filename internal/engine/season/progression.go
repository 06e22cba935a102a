// Package season implements end-of-season closure (spec §4.5): player
// progression, ageing/retirement, promotion/relegation, history/trophy
// archival, stats archival, and rollover.
package season

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

const dropProbability = 0.15

// ProgressionEntry is one line of the per-player progression report
// returned by Progress.
type ProgressionEntry struct {
	PlayerName string  `json:"player_name"`
	ClubName   string  `json:"club_name"`
	AgeBefore  int     `json:"age_before"`
	Minutes    int     `json:"minutes"`
	PlayRatio  float64 `json:"play_ratio"`
	BarsBefore int     `json:"bars_before"`
	BarsAfter  int     `json:"bars_after"`
	Delta      int     `json:"delta"`
	Note       string  `json:"note"`
}

// Progress applies §4.5 step 1 to every player in every club, using
// table (per club name) to derive play_ratio and seasonPlayers (by id)
// for minutes played. A failure progressing one player never aborts the
// loop; that player is reported "unchanged" (spec §7).
func Progress(r *rng.Source, clubs []*core.Club, table map[string]*core.TableRow, seasonPlayers map[int]*core.PlayerSeasonStats) []ProgressionEntry {
	var report []ProgressionEntry
	for _, c := range clubs {
		for _, p := range c.Players {
			entry := progressOne(r, c, p, table, seasonPlayers)
			report = append(report, entry)
		}
	}
	return report
}

func progressOne(r *rng.Source, c *core.Club, p *core.Player, table map[string]*core.TableRow, seasonPlayers map[int]*core.PlayerSeasonStats) ProgressionEntry {
	entry := ProgressionEntry{
		PlayerName: p.Name(), ClubName: c.Name, AgeBefore: p.Age,
		BarsBefore: p.SkillOpen, BarsAfter: p.SkillOpen,
	}

	minutes := 0
	if st := seasonPlayers[p.ID]; st != nil {
		minutes = st.MinutesPlayed
	}
	entry.Minutes = minutes

	expectedMinutes := 30 * 90
	if row := table[c.Name]; row != nil && row.Played > 0 {
		expectedMinutes = row.Played * 90
	}
	playRatio := float64(minutes) / float64(expectedMinutes)
	entry.PlayRatio = playRatio

	gainTrigger := p.FormSeason > 10 && playRatio >= 0.25
	lossTrigger := p.FormSeason < 10 || playRatio < 0.25

	defer func() {
		p.FormNow = 9 + r.IntN(3)
		p.FormSeason = 10
	}()

	if !gainTrigger && !lossTrigger {
		entry.Note = "unchanged"
		return entry
	}
	if r.Chance(dropProbability) {
		entry.Note = "unchanged"
		return entry
	}

	gainFactor, lossFactor := ageFactors(p.Age)
	gainFactor *= traitGainBonus(c, p)
	lossFactor *= traitLossBonus(p)

	delta := r.IntN(9) - 4 // [-4, 4] base hidden-skill delta
	if gainTrigger {
		delta = int(float64(abs(delta)+1) * gainFactor)
	} else {
		delta = -int(float64(abs(delta)+1) * lossFactor)
	}

	p.SkillHidden += delta
	rollHiddenSkill(p, 2)

	entry.BarsAfter = p.SkillOpen
	entry.Delta = entry.BarsAfter - entry.BarsBefore
	if entry.Delta > 0 {
		entry.Note = "improved"
	} else if entry.Delta < 0 {
		entry.Note = "declined"
	} else {
		entry.Note = "unchanged"
	}
	return entry
}

func ageFactors(age int) (gain, loss float64) {
	switch {
	case age <= 21:
		return 1.30, 0.70
	case age <= 28:
		return 1.0, 1.0
	case age <= 31:
		return 0.80, 1.10
	default:
		return 0.50, 1.50
	}
}

func traitGainBonus(c *core.Club, p *core.Player) float64 {
	m := 1.0
	if p.HasTrait(core.TraitTrainable) {
		m *= 1.20
	}
	if p.HasTrait(core.TraitLeader) || p.HasTrait(core.TraitIntelligent) {
		m *= 1.05
	}
	if c.CaptainID != nil && *c.CaptainID == p.ID {
		m *= 1.05
	}
	return m
}

func traitLossBonus(p *core.Player) float64 {
	m := 1.0
	if p.HasTrait(core.TraitInjuryProne) {
		m *= 1.25
	}
	return m
}

// rollHiddenSkill carries skill_hidden's overflow past [1,99] into
// skill_open one bar at a time, wrapping by exactly 100 per bar, until
// the overflow is spent or maxDeltaBars bars have moved in one
// direction. This is an accumulating rollover, not a snapshot of the
// pool's absolute value: a player sitting at a clamped extreme does not
// get re-credited a bar on a season where no further overflow occurs.
func rollHiddenSkill(p *core.Player, maxDeltaBars int) int {
	bars := 0
	for p.SkillHidden > core.MaxSkillHidden && bars < maxDeltaBars {
		p.SkillHidden -= 100
		p.SkillOpen++
		bars++
	}
	if p.SkillHidden > core.MaxSkillHidden {
		p.SkillHidden = core.MaxSkillHidden
	}
	for p.SkillHidden < core.MinSkillHidden && bars > -maxDeltaBars {
		p.SkillHidden += 100
		p.SkillOpen--
		bars--
	}
	if p.SkillHidden < core.MinSkillHidden {
		p.SkillHidden = core.MinSkillHidden
	}
	p.ClampSkillOpen()
	return bars
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// AgeAndRetire increments every player's age by one and removes anyone
// who has reached retirement age, per §4.5 step 2.
func AgeAndRetire(clubs []*core.Club) {
	for _, c := range clubs {
		retiring := make([]int, 0)
		for _, p := range c.Players {
			p.Age++
			if p.ShouldRetire() {
				retiring = append(retiring, p.ID)
			}
		}
		for _, id := range retiring {
			c.RemovePlayer(id)
		}
	}
}
