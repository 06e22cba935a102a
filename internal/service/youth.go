package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/economy"
	"github.com/apell0/managerspelet/internal/world"
)

// YouthGet returns the current youth-intake offers and preference for one
// team (spec §6's `youth` key).
func (s *Service) YouthGet(ctx context.Context, careerID, teamName string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	return Ok(struct {
		Offers     []core.JuniorOffer `json:"offers"`
		Preference string              `json:"preference"`
	}{Offers: w.JuniorOffers[teamName], Preference: w.Options["youth_preference"]})
}

// YouthSetPreference records a club's stated preference for future youth
// intake rolls (spec §4.6 "training orders" sibling feature).
func (s *Service) YouthSetPreference(ctx context.Context, careerID, preference string) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		w.Options["youth_preference"] = preference
		return preference, nil
	})
}

// YouthAccept materialises a pending junior offer into the club's squad.
func (s *Service) YouthAccept(ctx context.Context, careerID, teamName string, offerID int) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		club := w.ClubByName(teamName)
		if club == nil {
			return nil, core.NewNotFoundError("team", teamName)
		}
		offers := w.JuniorOffers[teamName]
		var playerID int
		for _, o := range offers {
			if o.ID == offerID {
				playerID = o.PlayerSnapshot.ID
				break
			}
		}
		if err := economy.AcceptJuniorOffer(club, &offers, offerID, &w.EconomyLedger, w.Season, w.CalendarWeek); err != nil {
			return nil, err
		}
		w.JuniorOffers[teamName] = offers
		return club.PlayerByID(playerID), nil
	})
}
