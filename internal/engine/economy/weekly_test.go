package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

func leagueWithClubs(clubs ...*core.Club) *core.League {
	return &core.League{Divisions: []*core.Division{{Name: "Div1", Level: 1, Clubs: clubs}}}
}

func TestProcessWeeklyCreditsSponsorIncomeForEveryClub(t *testing.T) {
	r := rng.New(1)
	a := clubWithPlayers("A", 15, 10, 0)
	b := clubWithPlayers("B", 15, 10, 0)
	league := leagueWithClubs(a, b)
	var market []core.MarketListing
	stats := map[int]*core.PlayerSeasonStats{}

	nextID := 900000
	result := ProcessWeekly(r, league, &market, 1, 1, stats, &nextID)
	assert.Equal(t, int64(600_000), a.Cash)
	assert.Equal(t, int64(600_000), b.Cash)
	assert.Len(t, result.Ledger, 2)
	for _, e := range result.Ledger {
		assert.Equal(t, "income", e.Type)
	}
}

func TestProcessWeeklyRefreshesMarketUpToMinimumListings(t *testing.T) {
	r := rng.New(5)
	a := clubWithPlayers("A", 15, 10, 10_000_000)
	league := leagueWithClubs(a)
	var market []core.MarketListing
	stats := map[int]*core.PlayerSeasonStats{}

	nextID := 900000
	ProcessWeekly(r, league, &market, 1, 1, stats, &nextID)
	assert.GreaterOrEqual(t, len(market), minListings)
}

func TestProcessWeeklyDropsListingsForSoldOrMissingPlayers(t *testing.T) {
	r := rng.New(2)
	a := clubWithPlayers("A", 15, 10, 0)
	league := leagueWithClubs(a)
	stale := core.MarketListing{PlayerSnapshot: core.Player{ID: 99999}, SellerClub: "A", Price: 100}
	market := []core.MarketListing{stale}
	stats := map[int]*core.PlayerSeasonStats{}

	nextID := 900000
	ProcessWeekly(r, league, &market, 1, 1, stats, &nextID)
	for _, l := range market {
		assert.NotEqual(t, 99999, l.PlayerSnapshot.ID)
	}
}

func TestRunBotSigningsMovesPlayerWhenBuyerCanAfford(t *testing.T) {
	r := rng.New(10)
	buyer := clubWithPlayers("Buyer", 15, 10, 100_000_000)
	seller := clubWithPlayers("Seller", 15, 10, 500_000)
	clubs := []*core.Club{buyer, seller}
	market := []core.MarketListing{
		{PlayerSnapshot: *seller.Players[0], SellerClub: "Seller", Price: 100_000},
	}
	var ledger []core.LedgerEntry

	signings := 0
	for i := 0; i < 200 && signings == 0; i++ {
		signings = runBotSignings(r, clubs, &market, &ledger, 1, 1)
	}
	assert.Equal(t, 1, signings)
	assert.Len(t, buyer.Players, 16)
	assert.Len(t, seller.Players, 14)
}

func TestPickBuyerExcludesSellerAndUnderfundedClubs(t *testing.T) {
	r := rng.New(3)
	seller := clubWithPlayers("Seller", 1, 10, 0)
	poor := clubWithPlayers("Poor", 1, 10, 10)
	rich := clubWithPlayers("Rich", 1, 10, 1_000_000)
	listing := core.MarketListing{SellerClub: "Seller", Price: 100_000}

	buyer := pickBuyer(r, []*core.Club{seller, poor, rich}, listing)
	require.NotNil(t, buyer)
	assert.Equal(t, "Rich", buyer.Name)
}

func TestGenerateFreeAgentProducesUniqueIncreasingIDs(t *testing.T) {
	r := rng.New(4)
	nextID := 900000
	first := generateFreeAgent(r, &nextID)
	second := generateFreeAgent(r, &nextID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.True(t, core.ValidPosition(first.Position))
}
