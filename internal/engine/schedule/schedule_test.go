package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNamesSingleRoundEven(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	matches := BuildNames(names, false)
	require.Len(t, matches, 6) // N*(N-1)/2

	seen := map[[2]string]bool{}
	for _, m := range matches {
		require.NotEqual(t, m.Home, m.Away)
		seen[[2]string{m.Home, m.Away}] = true
	}
	assert.Len(t, seen, 6)
}

func TestBuildNamesDoubleRound(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	matches := BuildNames(names, true)
	require.Len(t, matches, 12) // N*(N-1)

	pairs := map[[2]string]int{}
	for _, m := range matches {
		pairs[[2]string{m.Home, m.Away}]++
	}
	for _, count := range pairs {
		assert.Equal(t, 1, count)
	}
	assert.Len(t, pairs, 12)
}

func TestBuildNamesOddCountInsertsBye(t *testing.T) {
	names := []string{"A", "B", "C"}
	matches := BuildNames(names, false)
	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.NotEmpty(t, m.Home)
		assert.NotEmpty(t, m.Away)
	}
}

func TestBuildNamesRoundsAreDenseStartingAtOne(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	matches := BuildNames(names, false)
	rounds := map[int]bool{}
	for _, m := range matches {
		rounds[m.Round] = true
	}
	for r := 1; r <= len(rounds); r++ {
		assert.True(t, rounds[r], "round %d missing", r)
	}
}

func TestBuildNamesTooFewClubs(t *testing.T) {
	assert.Empty(t, BuildNames([]string{"A"}, false))
	assert.Empty(t, BuildNames(nil, false))
}
