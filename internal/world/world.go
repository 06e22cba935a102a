// Package world owns the GameState aggregate: the full career snapshot
// every other package operates over, plus the post-load healing pass and
// the career generator (spec §3, SPEC_FULL.md §12).
package world

import (
	"fmt"

	"github.com/apell0/managerspelet/internal/core"
)

// Meta carries the career's identity and save-format version.
type Meta struct {
	Version     int    `json:"version"`
	CareerID    string `json:"career_id"`
	UserTeamID  string `json:"user_team_id"`
	DisplayName string `json:"display_name"`
	RNGSeed     uint64 `json:"rng_seed"`

	// NextGeneratedPlayerID mints ids for free agents and junior-intake
	// offers: it is persisted and bumped on every call rather than kept
	// in a process-global, so two invocations of the same career never
	// mint the same id. Each career keeps its own counter.
	NextGeneratedPlayerID int `json:"next_generated_player_id"`
}

// GameState is the aggregate owner of everything described in spec §3:
// the current career's league, fixtures, phase, stats, market, and
// history. It is owned exclusively by the service instance that loaded
// it (spec §5); nothing outside internal/service mutates it directly.
type GameState struct {
	Meta Meta `json:"meta"`

	Season       int               `json:"season"`
	League       *core.League      `json:"league"`
	FixturesByDivision map[string][]core.Match `json:"fixtures_by_division"`
	CurrentRound int               `json:"current_round"`
	SeasonPhase  core.SeasonPhase  `json:"season_phase"`
	CalendarWeek int               `json:"calendar_week"`

	CupState *core.CupState `json:"cup_state,omitempty"`

	TableSnapshot map[string]*core.TableRow `json:"table_snapshot"`

	PlayerStats       map[int]*core.PlayerSeasonStats    `json:"player_stats"`
	PlayerCareerStats map[int]*core.PlayerSeasonStats    `json:"player_career_stats"`
	ClubStats         map[string]*core.ClubSeasonStats   `json:"club_stats"`
	ClubCareerStats   map[string]*core.ClubSeasonStats   `json:"club_career_stats"`

	MatchLog []*core.MatchRecord `json:"match_log"`

	TrainingOrders map[string][]core.TrainingOrder `json:"training_orders"`
	TransferList   []core.MarketListing            `json:"transfer_list"`
	JuniorOffers   map[string][]core.JuniorOffer    `json:"junior_offers"`

	PlayerStatsHistory map[int]map[int]*core.PlayerSeasonStats  `json:"player_stats_history"`
	ClubStatsHistory   map[int]map[string]*core.ClubSeasonStats `json:"club_stats_history"`

	EconomyLedger []core.LedgerEntry          `json:"economy_ledger"`
	Mailbox       map[string][]core.MailMessage `json:"mailbox"`

	Options map[string]string `json:"options"`

	History map[string][]core.SeasonRecord `json:"history"`
}

// ensureMap sets *m to a fresh map if it is nil; used throughout
// EnsureContainers.
func ensureMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// EnsureContainers heals a freshly-loaded (possibly legacy or partially
// populated) world so every map/slice field is non-nil, matching the
// source's tolerant getattr-with-default pattern generalised into a
// single post-load pass (spec §9 "Dynamic attribute access").
func (w *GameState) EnsureContainers() {
	ensureMap(&w.FixturesByDivision)
	ensureMap(&w.TableSnapshot)
	ensureMap(&w.PlayerStats)
	ensureMap(&w.PlayerCareerStats)
	ensureMap(&w.ClubStats)
	ensureMap(&w.ClubCareerStats)
	ensureMap(&w.TrainingOrders)
	ensureMap(&w.JuniorOffers)
	ensureMap(&w.PlayerStatsHistory)
	ensureMap(&w.ClubStatsHistory)
	ensureMap(&w.Mailbox)
	ensureMap(&w.Options)
	ensureMap(&w.History)

	if w.League == nil {
		w.League = &core.League{}
	}
	if w.SeasonPhase == "" {
		w.SeasonPhase = core.PhasePreseason
	}
	if w.Season == 0 {
		w.Season = 1
	}
	if w.CurrentRound == 0 {
		w.CurrentRound = 1
	}

	for _, d := range w.League.Divisions {
		for _, c := range d.Clubs {
			healClub(c)
		}
	}

	if w.Meta.NextGeneratedPlayerID == 0 {
		w.Meta.NextGeneratedPlayerID = nextFreeAgentSeed(w.League)
	}
}

// nextFreeAgentSeed picks a starting value for a legacy save's
// NextGeneratedPlayerID that cannot collide with any id already in use.
func nextFreeAgentSeed(league *core.League) int {
	maxID := 0
	for _, c := range league.AllClubs() {
		for _, p := range c.Players {
			if p.ID > maxID {
				maxID = p.ID
			}
		}
	}
	if maxID < 900000 {
		return 900000
	}
	return maxID + 1
}

func healClub(c *core.Club) {
	for _, p := range c.Players {
		if p.SkillHidden == 0 {
			p.SkillHidden = 50 // spec §9: prefer skill_hidden, default 50 if absent
		}
		if p.FormNow == 0 {
			p.FormNow = 10
		}
		if p.FormSeason == 0 {
			p.FormSeason = 10
		}
	}
}

// Validate runs the entity-model invariant checks from spec §3/§8 across
// the whole world, returning the first violation found (or nil).
func (w *GameState) Validate() error {
	if w.League == nil {
		return core.NewCorruptError("missing league")
	}
	seen := map[int]string{}
	for _, d := range w.League.Divisions {
		for _, c := range d.Clubs {
			if err := c.CheckSquadInvariants(); err != nil {
				return fmt.Errorf("club %s: %w", c.Name, err)
			}
			for _, p := range c.Players {
				if prior, ok := seen[p.ID]; ok {
					return core.NewCorruptError(fmt.Sprintf("player %d owned by both %s and %s", p.ID, prior, c.Name))
				}
				seen[p.ID] = c.Name
				if p.SkillOpen < core.MinSkillOpen || p.SkillOpen > core.MaxSkillOpen {
					return core.NewCorruptError(fmt.Sprintf("player %d skill_open out of range", p.ID))
				}
				if p.SkillHidden < core.MinSkillHidden || p.SkillHidden > core.MaxSkillHidden {
					return core.NewCorruptError(fmt.Sprintf("player %d skill_hidden out of range", p.ID))
				}
				if p.Age > core.MaxPlayerAge {
					return core.NewCorruptError(fmt.Sprintf("player %d age exceeds maximum", p.ID))
				}
			}
		}
	}
	return nil
}

// ClubByName resolves a club by name across the world's league.
func (w *GameState) ClubByName(name string) *core.Club {
	c, _ := w.League.ClubByName(name)
	return c
}
