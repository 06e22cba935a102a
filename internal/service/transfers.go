package service

import (
	"context"
	"sort"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/economy"
	"github.com/apell0/managerspelet/internal/world"
)

// TransfersMarket returns the current open transfer listings.
func (s *Service) TransfersMarket(ctx context.Context, careerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	return Ok(w.TransferList)
}

// TransfersBuy purchases the market listing at index idx on behalf of
// buyerTeam.
func (s *Service) TransfersBuy(ctx context.Context, careerID, buyerTeam string, idx int) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		buyer := w.ClubByName(buyerTeam)
		if buyer == nil {
			return nil, core.NewNotFoundError("team", buyerTeam)
		}
		if err := economy.PurchaseListing(buyer, w.ClubByName, &w.TransferList, idx, &w.EconomyLedger, w.Season, w.CalendarWeek); err != nil {
			return nil, err
		}
		return buyer.Cash, nil
	})
}

// TransfersBidRequest is the `transfers bid` payload.
type TransfersBidRequest struct {
	BuyerTeam  string `json:"buyer_team"`
	SellerTeam string `json:"seller_team"`
	PlayerID   int    `json:"player_id"`
	Offer      int64  `json:"offer"`
}

// TransfersBid submits an unsolicited bid for an owned player, applying
// it immediately if the seller-acceptance threshold policy accepts it
// (spec §4.6).
func (s *Service) TransfersBid(ctx context.Context, careerID string, req TransfersBidRequest) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		buyer := w.ClubByName(req.BuyerTeam)
		seller := w.ClubByName(req.SellerTeam)
		if buyer == nil {
			return nil, core.NewNotFoundError("team", req.BuyerTeam)
		}
		if seller == nil {
			return nil, core.NewNotFoundError("team", req.SellerTeam)
		}

		totalClubs := 0
		if _, d := w.League.ClubByName(seller.Name); d != nil {
			totalClubs = len(d.Clubs)
		}
		tablePosition := tablePositionOf(w.TableSnapshot, seller.Name)

		bid, err := economy.SubmitTransferBid(buyer, seller, req.PlayerID, req.Offer, w.PlayerStats, tablePosition, totalClubs)
		if err != nil {
			return nil, err
		}
		if !bid.Accepted {
			return bid, nil
		}

		listing := core.MarketListing{SellerClub: seller.Name, Price: req.Offer}
		for _, p := range seller.Players {
			if p.ID == req.PlayerID {
				listing.PlayerSnapshot = *p
				break
			}
		}
		if err := economy.Purchase(buyer, seller, &listing, &w.EconomyLedger, w.Season, w.CalendarWeek); err != nil {
			return nil, err
		}
		return bid, nil
	})
}

// tablePositionOf returns name's 1-based standing (points desc, goal
// diff desc, goals for desc), or 0 if it has no table row yet.
func tablePositionOf(table map[string]*core.TableRow, name string) int {
	if table[name] == nil {
		return 0
	}
	sorted := make([]*core.TableRow, 0, len(table))
	for _, r := range table {
		sorted = append(sorted, r)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		return a.GoalsFor > b.GoalsFor
	})
	for i, r := range sorted {
		if r.ClubName == name {
			return i + 1
		}
	}
	return 0
}
