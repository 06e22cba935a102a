package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
)

// StatsGet returns season and career player/club statistics plus leader
// boards and the best eleven (spec §4.8).
func (s *Service) StatsGet(ctx context.Context, careerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	return Ok(contract.Project(w).Stats)
}
