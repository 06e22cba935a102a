package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
)

// TableGet returns the current league table, split total/home/away (spec
// §6's `standings` key), without needing a full contract dump.
func (s *Service) TableGet(ctx context.Context, careerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	return Ok(contract.Project(w).Standings)
}
