package economy

import "github.com/apell0/managerspelet/internal/core"

// Purchase executes a transfer at the listing's price: the player moves
// from seller to buyer (or materialises from its snapshot if a free
// agent), cash changes hands, squad invariants are checked on both sides,
// and ledger entries are appended. seller is nil for a free-agent listing.
func Purchase(buyer, seller *core.Club, l *core.MarketListing, ledger *[]core.LedgerEntry, season, week int) error {
	if buyer == nil {
		return core.NewNotFoundError("club", "")
	}
	if !l.FreeAgent && seller == nil {
		return core.NewNotFoundError("club", l.SellerClub)
	}
	if l.Price < 0 {
		return core.NewInvalidInputError("price", "must not be negative")
	}
	if buyer.Cash < l.Price {
		return core.NewDomainRuleError("insufficient_cash", "buyer cannot afford listing")
	}
	if len(buyer.Players)+1 > core.MaxSquad {
		return core.NewDomainRuleError("squad_size", "buyer squad would exceed maximum size")
	}
	if !l.FreeAgent {
		if seller.Name == buyer.Name {
			return core.NewDomainRuleError("self_purchase", "cannot buy own player")
		}
		if len(seller.Players)-1 < core.MinSquad {
			return core.NewDomainRuleError("squad_size", "seller squad would drop below minimum size")
		}
	}

	player := l.PlayerSnapshot
	buyer.Cash -= l.Price
	buyer.Players = append(buyer.Players, &player)

	*ledger = append(*ledger, core.LedgerEntry{
		Date: core.LedgerDate{Season: season, Week: week}, ClubID: buyer.ClubID, Club: buyer.Name,
		Type: "transfer_in", Label: "purchase: " + player.Name(), Amount: -l.Price,
	})

	if !l.FreeAgent {
		seller.RemovePlayer(player.ID)
		seller.Cash += l.Price
		*ledger = append(*ledger, core.LedgerEntry{
			Date: core.LedgerDate{Season: season, Week: week}, ClubID: seller.ClubID, Club: seller.Name,
			Type: "transfer_out", Label: "sale: " + player.Name(), Amount: l.Price,
		})
	}
	return nil
}

// PurchaseListing resolves market[idx] against Purchase and removes it
// from the market on success.
func PurchaseListing(buyer *core.Club, clubLookup func(string) *core.Club, market *[]core.MarketListing, idx int, ledger *[]core.LedgerEntry, season, week int) error {
	if idx < 0 || idx >= len(*market) {
		return core.NewNotFoundError("listing", "")
	}
	l := (*market)[idx]
	var seller *core.Club
	if !l.FreeAgent {
		seller = clubLookup(l.SellerClub)
	}
	if err := Purchase(buyer, seller, &l, ledger, season, week); err != nil {
		return err
	}
	*market = append((*market)[:idx], (*market)[idx+1:]...)
	return nil
}

// BidResult reports the outcome of SubmitTransferBid.
type BidResult struct {
	Accepted bool
	Reason   string
	Value    int64
}

// SubmitTransferBid evaluates a user bid for an owned (non-listed)
// player against the seller-acceptance threshold policy of §4.6.
// tablePosition is the seller's 1-based league position; totalClubs is
// divisional size (both 0 if unknown, in which case the position
// modifier is skipped).
func SubmitTransferBid(buyer, seller *core.Club, playerID int, offer int64, seasonStats map[int]*core.PlayerSeasonStats, tablePosition, totalClubs int) (BidResult, error) {
	if buyer == nil || seller == nil {
		return BidResult{}, core.NewNotFoundError("club", "")
	}
	if buyer.Name == seller.Name {
		return BidResult{}, core.NewDomainRuleError("self_purchase", "cannot buy own player")
	}
	player := seller.PlayerByID(playerID)
	if player == nil {
		return BidResult{}, core.NewNotFoundError("player", "")
	}
	if offer < 0 {
		return BidResult{}, core.NewInvalidInputError("offer", "must not be negative")
	}

	value := Valuate(player, seasonStats[player.ID])
	threshold := acceptanceThreshold(seller, player, value, tablePosition, totalClubs)

	minRatio := 0.85
	if float64(offer)/float64(value) < minRatio || float64(offer)/float64(value) < threshold {
		return BidResult{Accepted: false, Reason: "avböjde", Value: value}, nil
	}

	if len(seller.Players)-1 < core.MinSquad {
		return BidResult{Accepted: false, Reason: "avböjde", Value: value}, nil
	}
	if len(buyer.Players)+1 > core.MaxSquad {
		return BidResult{}, core.NewDomainRuleError("squad_size", "buyer squad would exceed maximum size")
	}
	if buyer.Cash < offer {
		return BidResult{}, core.NewDomainRuleError("insufficient_cash", "buyer cannot afford offer")
	}

	buyer.Cash -= offer
	seller.Cash += offer
	seller.RemovePlayer(player.ID)
	buyer.Players = append(buyer.Players, player)

	return BidResult{Accepted: true, Value: value}, nil
}

// acceptanceThreshold computes §4.6's seller threshold T, starting at
// 1.05 and adjusted by league position, cash, squad size, and relative
// skill.
func acceptanceThreshold(seller *core.Club, player *core.Player, value int64, tablePosition, totalClubs int) float64 {
	t := 1.05

	if totalClubs > 0 && tablePosition > 0 {
		quartile := float64(tablePosition) / float64(totalClubs)
		switch {
		case quartile <= 0.25:
			t += 0.35
		case quartile <= 0.5:
			t += 0.15
		case quartile >= 0.9:
			t -= 0.15
		}
	}

	switch {
	case seller.Cash < value:
		t -= 0.10
	case seller.Cash < value*2:
		t -= 0.10
	case seller.Cash > value*10:
		t += 0.05
	}

	switch {
	case len(seller.Players) <= 14:
		t += 0.15
	case len(seller.Players) >= 23:
		t -= 0.05
	}

	avg := avgSquadSkill(seller)
	switch {
	case float64(player.SkillOpen) >= avg+5:
		t += 0.10
	case float64(player.SkillOpen) < avg-3:
		t -= 0.05
	}

	return t
}

func avgSquadSkill(c *core.Club) float64 {
	if len(c.Players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range c.Players {
		sum += p.SkillOpen
	}
	return float64(sum) / float64(len(c.Players))
}
