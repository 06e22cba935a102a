package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/contract"
	"github.com/apell0/managerspelet/internal/world"
)

// GameDump projects the full external contract for a career (spec §6). It
// never persists; mock careers and on-disk careers are dumped the same
// way.
func (s *Service) GameDump(ctx context.Context, careerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}

	if s.cachingProjector != nil {
		c, err := s.cachingProjector.Project(ctx, w)
		if err != nil {
			return Fail(err)
		}
		return Ok(c)
	}
	return Ok(contract.Project(w))
}

// GameSave force-rewrites a career's save file without mutating it,
// useful after a manual edit outside the normal transaction path.
func (s *Service) GameSave(ctx context.Context, careerID string) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		return nil, nil
	})
}

// GameLoad validates that a career loads and passes its invariant checks,
// without mutating or persisting anything.
func (s *Service) GameLoad(ctx context.Context, careerID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	if err := w.Validate(); err != nil {
		return Fail(err)
	}
	return Ok(contract.MetaView{
		Version: w.Meta.Version, CareerID: w.Meta.CareerID,
		UserTeamID: w.Meta.UserTeamID, DisplayName: w.Meta.DisplayName,
	})
}
