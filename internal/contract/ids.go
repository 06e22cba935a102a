// Package contract projects a GameState into the stable, external JSON
// shape described by spec §6: a read-only view a thin CLI/UI consumes.
// The projector never mutates the world it is given (spec §4.8).
package contract

import (
	"fmt"
	"strings"

	"github.com/apell0/managerspelet/internal/core"
)

// Slugify turns a club or competition name into the lowercase,
// hyphen-separated form used throughout contract ids.
func Slugify(s string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// MatchID builds the synthetic fixture/match id spec §4.8 specifies:
// {l|c}-{round:02d}-{slug(home)}-{slug(away)}.
func MatchID(competition core.Competition, round int, home, away string) string {
	prefix := "l"
	if competition == core.CompetitionCup {
		prefix = "c"
	}
	return fmt.Sprintf("%s-%02d-%s-%s", prefix, round, Slugify(home), Slugify(away))
}

// PlayerID exposes a player's integer id as the "p-{int}" string form §6
// requires of the external contract.
func PlayerID(id int) string {
	return fmt.Sprintf("p-%d", id)
}

// TeamIDAssigner hands out unique "t-{slug}" team ids, suffixing
// "-1", "-2", ... on a slug collision (spec §4.8 "team id uniqueness
// enforced by suffixing").
type TeamIDAssigner struct {
	seen  map[string]int
	names map[string]string
}

// NewTeamIDAssigner creates an empty assigner.
func NewTeamIDAssigner() *TeamIDAssigner {
	return &TeamIDAssigner{seen: map[string]int{}, names: map[string]string{}}
}

// Assign returns a unique team id for name, suffixing on repeat slugs.
func (a *TeamIDAssigner) Assign(name string) string {
	slug := Slugify(name)
	if slug == "" {
		slug = "team"
	}
	n := a.seen[slug]
	a.seen[slug] = n + 1
	id := "t-" + slug
	if n > 0 {
		id = fmt.Sprintf("t-%s-%d", slug, n)
	}
	a.names[name] = id
	return id
}

// NameToID exposes the club-name-to-team-id map built up by Assign calls
// so callers can resolve a team id from a core.Club.Name after the fact.
func (a *TeamIDAssigner) NameToID() map[string]string {
	return a.names
}
