package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
	"github.com/apell0/managerspelet/internal/core"
)

// CupGet returns the current cup bracket, its played fixtures, and match
// stats (spec §6's `cups` key).
func (s *Service) CupGet(ctx context.Context, careerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	view, ok := contract.Project(w).Cups.ByID["primary"]
	if !ok {
		return Fail(core.NewNotFoundError("cup", "primary"))
	}
	return Ok(view)
}
