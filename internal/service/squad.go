package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
	"github.com/apell0/managerspelet/internal/core"
)

// SquadGet returns the player ids registered to one team (spec §6's
// `squads` key).
func (s *Service) SquadGet(ctx context.Context, careerID, teamID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	c := contract.Project(w)
	ids, ok := c.Squads[teamID]
	if !ok {
		return Fail(core.NewNotFoundError("team", teamID))
	}
	return Ok(ids)
}
