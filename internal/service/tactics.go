package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

// TacticsSetRequest is the `tactics set` payload.
type TacticsSetRequest struct {
	TeamName       string               `json:"team_name"`
	Attacking      bool                 `json:"attacking"`
	Defending      bool                 `json:"defending"`
	OffsideTrap    bool                 `json:"offside_trap"`
	DarkArts       bool                 `json:"dark_arts"`
	Tempo          float64              `json:"tempo"`
	Aggressiveness core.Aggressiveness  `json:"aggressiveness"`
}

// TacticsSet updates one club's persistent tactic and aggressiveness.
func (s *Service) TacticsSet(ctx context.Context, careerID string, req TacticsSetRequest) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		club := w.ClubByName(req.TeamName)
		if club == nil {
			return nil, core.NewNotFoundError("team", req.TeamName)
		}
		club.Tactic = core.Tactic{
			Attacking: req.Attacking, Defending: req.Defending,
			OffsideTrap: req.OffsideTrap, DarkArts: req.DarkArts,
			Tempo: req.Tempo,
		}
		club.Tactic.ClampTempo()
		if req.Aggressiveness != "" {
			club.Aggressiveness = req.Aggressiveness
		}
		return club.Tactic, nil
	})
}
