package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/world"
)

// OptionsSet merges a key/value pair into the career's free-form options
// map (spec §6's `options` key — e.g. youth intake preference).
func (s *Service) OptionsSet(ctx context.Context, careerID, key, value string) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		w.Options[key] = value
		return w.Options, nil
	})
}
