package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

// EconomyGet returns the user team's balance and ledger (spec §6's
// `economy` key).
func (s *Service) EconomyGet(ctx context.Context, careerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	return Ok(contract.Project(w).Economy)
}

// EconomySponsor applies a one-off sponsorship payment to a club's cash
// balance, logging it to the ledger.
func (s *Service) EconomySponsor(ctx context.Context, careerID, teamName string, amount int64, label string) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		club := w.ClubByName(teamName)
		if club == nil {
			return nil, core.NewNotFoundError("team", teamName)
		}
		if amount <= 0 {
			return nil, core.NewInvalidInputError("amount", "must be positive")
		}
		club.Cash += amount
		entry := core.LedgerEntry{
			Date: core.LedgerDate{Season: w.Season, Week: w.CalendarWeek},
			ClubID: club.ClubID, Club: club.Name,
			Type: "sponsorship", Label: label, Amount: amount,
		}
		w.EconomyLedger = append(w.EconomyLedger, entry)
		return club.Cash, nil
	})
}
