package core

// Tactic is a club's persistent style-of-play configuration, consumed by
// the match kernel's expected-goals and foul/card synthesis.
type Tactic struct {
	Attacking   bool    `json:"attacking"`
	Defending   bool    `json:"defending"`
	OffsideTrap bool    `json:"offside_trap"`
	DarkArts    bool    `json:"dark_arts"`
	Tempo       float64 `json:"tempo"` // typical range [0.8, 1.2]
}

// DefaultTactic returns a neutral tactic with tempo 1.0.
func DefaultTactic() Tactic {
	return Tactic{Tempo: 1.0}
}

// ClampTempo clamps Tempo into the tactic's typical [0.8, 1.2] range.
func (t *Tactic) ClampTempo() {
	const lo, hi = 0.8, 1.2
	if t.Tempo < lo {
		t.Tempo = lo
	}
	if t.Tempo > hi {
		t.Tempo = hi
	}
}

// Offset returns the expected-goals tactic offset used by §4.2 step 6:
// +0.10 attacking, -0.05 defending, 0 otherwise.
func (t Tactic) Offset() float64 {
	switch {
	case t.Attacking:
		return 0.10
	case t.Defending:
		return -0.05
	default:
		return 0
	}
}

// Referee describes the match official whose skill/hardness modulate
// foul, card, and penalty synthesis.
type Referee struct {
	Name     string `json:"name"`
	Skill    int    `json:"skill"`    // 1-10
	Hardness int    `json:"hardness"` // 1-10
}

// refereeNameTable is the fixed 10-name table used for deterministic
// blank-referee resolution (§4.2 step 1).
var refereeNameTable = [10]string{
	"Erik Lindqvist", "Sofia Berg", "Marcus Olander", "Anna Holm",
	"Viktor Sandberg", "Elin Nyström", "Johan Dahl", "Karin Ekström",
	"Fredrik Lund", "Maja Hedberg",
}

// Leniency returns the foul-detection multiplier used by §4.2 step 10: a
// harder referee (high Hardness, low Skill) calls more fouls.
func (r Referee) Leniency() float64 {
	skill := r.Skill
	hardness := r.Hardness
	if skill == 0 {
		skill = 5
	}
	if hardness == 0 {
		hardness = 5
	}
	v := 0.7 + 0.06*float64(hardness) - 0.02*float64(skill)
	if v < 0.6 {
		v = 0.6
	}
	if v > 1.4 {
		v = 1.4
	}
	return v
}

// ResolveRefereeName picks a deterministic name from the fixed table when
// ref.Name is blank, using hash(home||away) mod 10.
func ResolveRefereeName(ref *Referee, home, away string) {
	if ref.Name != "" {
		return
	}
	h := fnv32(home + "||" + away)
	ref.Name = refereeNameTable[h%uint32(len(refereeNameTable))]
}

func fnv32(s string) uint32 {
	const prime = 16777619
	var hash uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		hash ^= uint32(s[i])
		hash *= prime
	}
	return hash
}

// SubstitutionRule describes a planned or injury-replacement substitution.
type SubstitutionRule struct {
	Minute       int  `json:"minute"`
	PlayerOutID  int  `json:"player_out_id"`
	PlayerInID   int  `json:"player_in_id"`
	OnInjuryOnly bool `json:"on_injury_only"` // matched only against an injury event
}
