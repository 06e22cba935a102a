package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

func clubWithPlayers(name string, n int, skill int, cash int64) *core.Club {
	c := &core.Club{ClubID: "club-" + name, Name: name, Cash: cash}
	for i := 0; i < n; i++ {
		c.Players = append(c.Players, &core.Player{
			ID: (i + 1), First: "P", Last: name, Age: 25, Position: core.MF,
			SkillOpen: skill, SkillHidden: 50, FormNow: 10, FormSeason: 10,
		})
	}
	return c
}

func TestValuateNeverBelowFloor(t *testing.T) {
	p := &core.Player{Age: 40, SkillOpen: 1, FormNow: 1, FormSeason: 1, Traits: []core.Trait{core.TraitInconsistent}}
	v := Valuate(p, nil)
	assert.GreaterOrEqual(t, v, int64(50_000))
}

func TestValuateYoungerPlayerIsWorthMore(t *testing.T) {
	young := &core.Player{Age: 19, SkillOpen: 15, FormNow: 10, FormSeason: 10}
	old := &core.Player{Age: 35, SkillOpen: 15, FormNow: 10, FormSeason: 10}
	assert.Greater(t, Valuate(young, nil), Valuate(old, nil))
}

func TestValuateGoalkeeperDiscount(t *testing.T) {
	gk := &core.Player{Age: 25, SkillOpen: 15, Position: core.GK, FormNow: 10, FormSeason: 10}
	mf := &core.Player{Age: 25, SkillOpen: 15, Position: core.MF, FormNow: 10, FormSeason: 10}
	assert.Less(t, Valuate(gk, nil), Valuate(mf, nil))
}

func TestPurchaseMovesPlayerAndCash(t *testing.T) {
	buyer := clubWithPlayers("Buyer", 15, 10, 2_000_000)
	seller := clubWithPlayers("Seller", 15, 10, 500_000)
	listing := core.MarketListing{PlayerSnapshot: *seller.Players[0], SellerClub: seller.Name, Price: 100_000}
	var ledger []core.LedgerEntry

	err := Purchase(buyer, seller, &listing, &ledger, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1_900_000), buyer.Cash)
	assert.Equal(t, int64(600_000), seller.Cash)
	assert.Len(t, buyer.Players, 16)
	assert.Len(t, seller.Players, 14)
	assert.Len(t, ledger, 2)
}

func TestPurchaseRejectsInsufficientCash(t *testing.T) {
	buyer := clubWithPlayers("Buyer", 15, 10, 10_000)
	seller := clubWithPlayers("Seller", 15, 10, 500_000)
	listing := core.MarketListing{PlayerSnapshot: *seller.Players[0], SellerClub: seller.Name, Price: 100_000}
	var ledger []core.LedgerEntry

	err := Purchase(buyer, seller, &listing, &ledger, 1, 1)
	require.Error(t, err)
	assert.Equal(t, "DOMAIN_RULE", core.Code(err))
	var domainErr *core.DomainRuleError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "insufficient_cash", domainErr.Rule)
}

func TestPurchaseRejectsWhenSellerWouldDropBelowMinimum(t *testing.T) {
	buyer := clubWithPlayers("Buyer", 15, 10, 2_000_000)
	seller := clubWithPlayers("Seller", core.MinSquad, 10, 500_000)
	listing := core.MarketListing{PlayerSnapshot: *seller.Players[0], SellerClub: seller.Name, Price: 100_000}
	var ledger []core.LedgerEntry

	err := Purchase(buyer, seller, &listing, &ledger, 1, 1)
	require.Error(t, err)
	var domainErr *core.DomainRuleError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "squad_size", domainErr.Rule)
}

func TestPurchaseFreeAgentSkipsSellerSide(t *testing.T) {
	buyer := clubWithPlayers("Buyer", 15, 10, 1_000_000)
	listing := core.MarketListing{PlayerSnapshot: core.Player{ID: 900, First: "Free", Last: "Agent"}, FreeAgent: true, Price: 50_000}
	var ledger []core.LedgerEntry

	err := Purchase(buyer, nil, &listing, &ledger, 1, 1)
	require.NoError(t, err)
	assert.Len(t, buyer.Players, 16)
	assert.Len(t, ledger, 1)
}

func TestSubmitTransferBidRejectsSelfPurchase(t *testing.T) {
	club := clubWithPlayers("Solo", 15, 10, 1_000_000)
	_, err := SubmitTransferBid(club, club, 1, 1_000_000, nil, 1, 10)
	require.Error(t, err)
	var domainErr *core.DomainRuleError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "self_purchase", domainErr.Rule)
}

func TestSubmitTransferBidBelowValueIsRejectedNotErrored(t *testing.T) {
	buyer := clubWithPlayers("Buyer", 15, 10, 10_000_000)
	seller := clubWithPlayers("Seller", 15, 10, 500_000)
	result, err := SubmitTransferBid(buyer, seller, seller.Players[0].ID, 1, nil, 1, 10)
	require.NoError(t, err)
	assert.False(t, result.Accepted)
}

func TestSubmitTransferBidAcceptedMovesPlayer(t *testing.T) {
	buyer := clubWithPlayers("Buyer", 15, 10, 50_000_000)
	seller := clubWithPlayers("Seller", 15, 10, 500_000)
	value := Valuate(seller.Players[0], nil)
	result, err := SubmitTransferBid(buyer, seller, seller.Players[0].ID, int64(float64(value)*2), nil, 18, 20)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Len(t, seller.Players, 14)
	assert.Len(t, buyer.Players, 16)
}

func TestAcceptJuniorOfferDeductsCashAndRemovesOffer(t *testing.T) {
	club := clubWithPlayers("Club", 15, 10, 1_000_000)
	offers := []core.JuniorOffer{{ID: 1, Price: 100_000, PlayerSnapshot: core.Player{ID: 500, First: "J", Last: "Talang"}}}
	var ledger []core.LedgerEntry

	err := AcceptJuniorOffer(club, &offers, 1, &ledger, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(900_000), club.Cash)
	assert.Empty(t, offers)
	assert.NotNil(t, club.PlayerByID(500))
}

func TestPruneExpiredOffersDropsOldEntries(t *testing.T) {
	offers := []core.JuniorOffer{
		{ID: 1, ExpiresSeason: 1},
		{ID: 2, ExpiresSeason: 3},
	}
	kept := PruneExpiredOffers(offers, 2)
	require.Len(t, kept, 1)
	assert.Equal(t, 2, kept[0].ID)
}

func TestRollJuniorOffersWithinSpecBounds(t *testing.T) {
	r := rng.New(3)
	nextID := 0
	offers := RollJuniorOffers(r, 5, &nextID)
	assert.GreaterOrEqual(t, len(offers), 1)
	assert.LessOrEqual(t, len(offers), 3)
	for _, o := range offers {
		assert.Equal(t, 6, o.ExpiresSeason)
		assert.True(t, core.ValidPosition(o.PlayerSnapshot.Position))
	}
}
