package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
)

// FixturesList returns every scheduled/final fixture across league and cup
// competitions (spec §6's `fixtures` key).
func (s *Service) FixturesList(ctx context.Context, careerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	return Ok(contract.Project(w).Fixtures)
}
