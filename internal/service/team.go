package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
	"github.com/apell0/managerspelet/internal/core"
)

// TeamGet returns one team's view by its contract id.
func (s *Service) TeamGet(ctx context.Context, careerID, teamID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	c := contract.Project(w)
	for _, t := range c.Teams {
		if t.ID == teamID {
			return Ok(t)
		}
	}
	return Fail(core.NewNotFoundError("team", teamID))
}
