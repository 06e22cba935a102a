package service

import (
	"context"
	"fmt"
	"time"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

// CareerListResult is the payload for `career list`.
type CareerListResult struct {
	Careers []string `json:"careers"`
}

// CareerList returns every saved career id.
func (s *Service) CareerList(ctx context.Context) Result {
	ids, err := s.Manager.Careers(ctx)
	if err != nil {
		return Fail(err)
	}
	return Ok(CareerListResult{Careers: ids})
}

// NewCareerRequest is the `game new` payload.
type NewCareerRequest struct {
	Structure        string `json:"structure"` // "pyramid" or "rak"/"flat"
	Levels           int    `json:"levels"`
	TeamsPerDivision int    `json:"teams_per_division"`
	DoubleRound      bool   `json:"double_round"`
	PromoteCount     int    `json:"promote_count"`
	RelegateCount    int    `json:"relegate_count"`
	UserTeam         struct {
		Name string `json:"name"`
	} `json:"user_team"`
	Seed uint64 `json:"seed"`
}

// NewCareerResult is the `game new` payload: just enough to let the caller
// immediately dump the contract.
type NewCareerResult struct {
	CareerID string `json:"career_id"`
}

func structureFromString(s string) core.LeagueFormat {
	if s == "pyramid" {
		return core.FormatPyramid
	}
	return core.FormatFlat
}

// GameNew creates a fresh career, persists it, and returns its id. Career
// ids are prefixed "c-" per spec §8's end-to-end scenario 1.
func (s *Service) GameNew(ctx context.Context, req NewCareerRequest) Result {
	if req.TeamsPerDivision < 2 {
		return Fail(core.NewInvalidInputError("teams_per_division", "must be at least 2"))
	}
	if req.UserTeam.Name == "" {
		return Fail(core.NewInvalidInputError("user_team.name", "required"))
	}

	careerID := fmt.Sprintf("c-%d", time.Now().UnixNano())

	w, err := world.NewCareer(world.CareerOptions{
		CareerID:         careerID,
		Structure:        structureFromString(req.Structure),
		Levels:           maxOne(req.Levels),
		TeamsPerDivision: req.TeamsPerDivision,
		DoubleRound:      req.DoubleRound,
		PromoteCount:     req.PromoteCount,
		RelegateCount:    req.RelegateCount,
		UserTeamName:     req.UserTeam.Name,
		Seed:             req.Seed,
	})
	if err != nil {
		return Fail(err)
	}

	if s.persistAllowed(true) {
		if err := s.Manager.Save(ctx, careerID, w); err != nil {
			return Fail(err)
		}
	}

	return Ok(NewCareerResult{CareerID: careerID})
}

func maxOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// CareerDelete removes a saved career.
func (s *Service) CareerDelete(ctx context.Context, careerID string) Result {
	if err := s.Manager.Store.Delete(ctx, careerID); err != nil {
		return Fail(err)
	}
	return Ok(nil)
}
