package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
	"github.com/apell0/managerspelet/internal/core"
)

// PlayerGet returns one player's view by its contract id.
func (s *Service) PlayerGet(ctx context.Context, careerID, playerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	c := contract.Project(w)
	for _, p := range c.Players {
		if p.ID == playerID {
			return Ok(p)
		}
	}
	return Fail(core.NewNotFoundError("player", playerID))
}
