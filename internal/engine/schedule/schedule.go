// Package schedule builds round-robin fixture lists for a division's
// clubs (spec §4.1).
package schedule

import "github.com/apell0/managerspelet/internal/core"

// byeClub is a sentinel name never assigned to a real club; pairings
// against it are dropped rather than scheduled.
const byeClub = ""

// Build produces a round-robin fixture list for clubs. If doubleRound is
// true, the reverse (home/away swapped) pairings are appended as rounds
// N..2N-2. Round numbers start at 1 and are dense. A club list shorter
// than 2 entries yields an empty schedule.
func Build(clubs []*core.Club, doubleRound bool) []core.Match {
	names := make([]string, len(clubs))
	for i, c := range clubs {
		names[i] = c.Name
	}
	return BuildNames(names, doubleRound)
}

// BuildNames is Build over bare club names, used by tests and by the
// season package's rollover, which only needs names.
func BuildNames(names []string, doubleRound bool) []core.Match {
	n := len(names)
	if n < 2 {
		return nil
	}

	rotation := append([]string(nil), names...)
	hasBye := false
	if n%2 != 0 {
		rotation = append(rotation, byeClub)
		hasBye = true
	}
	m := len(rotation)

	var matches []core.Match
	round := 1
	for r := 0; r < m-1; r++ {
		for i := 0; i < m/2; i++ {
			home := rotation[i]
			away := rotation[m-1-i]
			if home == byeClub || away == byeClub {
				continue
			}
			if r%2 == 1 {
				home, away = away, home
			}
			matches = append(matches, core.Match{Home: home, Away: away, Round: round})
		}
		round++
		// Rotate: keep index 0 fixed, rotate the rest.
		last := rotation[m-1]
		copy(rotation[2:], rotation[1:m-1])
		rotation[1] = last
	}

	if doubleRound {
		maxRound := round - 1
		firstLegCount := len(matches)
		for i := 0; i < firstLegCount; i++ {
			leg := matches[i]
			matches = append(matches, core.Match{
				Home:  leg.Away,
				Away:  leg.Home,
				Round: maxRound + leg.Round,
			})
		}
	}
	_ = hasBye
	return matches
}
