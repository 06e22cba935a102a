package contract

import "github.com/apell0/managerspelet/internal/core"

// MetaView mirrors world.Meta for the external contract.
type MetaView struct {
	Version     int    `json:"version"`
	CareerID    string `json:"career_id"`
	UserTeamID  string `json:"user_team_id"`
	DisplayName string `json:"display_name"`
}

// SeasonView is the contract's `season` key (spec §6).
type SeasonView struct {
	Year         int    `json:"year"`
	Phase        string `json:"phase"`
	RoundCurrent int    `json:"round_current"`
	CalendarWeek int    `json:"calendar_week"`
}

// DivisionView lists one division's team ids in club order.
type DivisionView struct {
	Name  string   `json:"name"`
	Level int      `json:"level"`
	Teams []string `json:"teams"`
}

// LeagueView is the contract's `league` key.
type LeagueView struct {
	Name      string         `json:"name"`
	Structure string         `json:"structure"`
	Divisions []DivisionView `json:"divisions"`
}

// TeamView is one entry of the contract's `teams[]`.
type TeamView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DivisionName   string `json:"division_name"`
	Cash           int64  `json:"cash"`
	Stadium        string `json:"stadium"`
	Manager        string `json:"manager"`
	Tactic         core.Tactic `json:"tactic"`
	Aggressiveness core.Aggressiveness `json:"aggressiveness"`
}

// PlayerView is one entry of the contract's `players[]`.
type PlayerView struct {
	ID          string      `json:"id"`
	TeamID      string      `json:"team_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Age         int         `json:"age"`
	Position    core.Position `json:"position"`
	Number      int         `json:"number"`
	SkillOpen   int         `json:"skill_open"`
	FormNow     int         `json:"form_now"`
	Traits      []core.Trait `json:"traits"`
	ValueSEK    int64       `json:"value_sek"`
	IsCaptain   bool        `json:"is_captain"`
}

// StandingsView is the contract's `standings` key: the same table
// rendered three ways.
type StandingsView struct {
	Total []core.TableRow `json:"total"`
	Home  []core.TableRow `json:"home"`
	Away  []core.TableRow `json:"away"`
}

// FixtureView is one entry of the contract's `fixtures[]`.
type FixtureView struct {
	ID          string `json:"id"`
	Competition string `json:"competition"`
	Round       int    `json:"round"`
	Home        string `json:"home"`
	Away        string `json:"away"`
	Status      string `json:"status"` // "scheduled" or "final"
}

// MatchesView is the contract's `matches` key.
type MatchesView struct {
	ByID map[string]*core.MatchRecord `json:"by_id"`
}

// YouthView is the contract's `youth` key.
type YouthView struct {
	Offers     map[string][]core.JuniorOffer `json:"offers"`
	Accepted   []core.JuniorOffer            `json:"accepted"`
	Preference string                        `json:"preference"`
}

// TransfersView is the contract's `transfers` key.
type TransfersView struct {
	Market     []core.MarketListing `json:"market"`
	Arrivals   []core.LedgerEntry   `json:"arrivals"`
	Departures []core.LedgerEntry   `json:"departures"`
}

// LeadersView is the contract's `stats.leaders` key: top-10 lists by
// category (spec §4.8).
type LeadersView struct {
	Goals       []LeaderEntry `json:"goals"`
	Assists     []LeaderEntry `json:"assists"`
	Points      []LeaderEntry `json:"points"`
	CleanSheets []LeaderEntry `json:"clean_sheets"`
}

// LeaderEntry is one ranked row in a leaders list.
type LeaderEntry struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	TeamID   string `json:"team_id"`
	Value    int    `json:"value"`
}

// BestElevenSlot is one position in the contract's best_eleven XI.
type BestElevenSlot struct {
	PlayerID   string  `json:"player_id"`
	Name       string  `json:"name"`
	Position   core.Position `json:"position"`
	RatingAvg  float64 `json:"rating_avg"`
	IsCaptain  bool    `json:"is_captain"`
}

// StatsView is the contract's `stats` key.
type StatsView struct {
	PlayersCurrent []core.PlayerSeasonStats `json:"players_current"`
	PlayersAll     []core.PlayerSeasonStats `json:"players_all"`
	ClubCurrent    []core.ClubSeasonStats   `json:"club_current"`
	ClubAll        []core.ClubSeasonStats   `json:"club_all"`
	Leaders        LeadersView              `json:"leaders"`
	BestEleven     []BestElevenSlot         `json:"best_eleven"`
}

// EconomyView is the contract's `economy` key, scoped to the user's club.
type EconomyView struct {
	TeamID  string              `json:"team_id"`
	Balance int64               `json:"balance"`
	Ledger  []core.LedgerEntry  `json:"ledger"`
}

// CupBracketView projects core.CupState for the contract.
type CupBracketView struct {
	TwoLegged      bool     `json:"two_legged"`
	CurrentClubs   []string `json:"current_clubs"`
	Finished       bool     `json:"finished"`
	Winner         string   `json:"winner,omitempty"`
	Round          int      `json:"round"`
}

// CupView is one cup competition's entry under `cups.by_id`.
type CupView struct {
	Bracket  CupBracketView     `json:"bracket"`
	Fixtures []FixtureView      `json:"fixtures"`
	Stats    []core.MatchRecord `json:"stats"`
}

// CupsView is the contract's `cups` key; only one competition ("primary")
// is modeled (spec §4.4 tracks a single CupState per world).
type CupsView struct {
	ByID map[string]CupView `json:"by_id"`
}

// Contract is the full external projection of a GameState (spec §6).
type Contract struct {
	Meta      MetaView                        `json:"meta"`
	Options   map[string]string               `json:"options"`
	Season    SeasonView                      `json:"season"`
	League    LeagueView                      `json:"league"`
	Teams     []TeamView                      `json:"teams"`
	Players   []PlayerView                    `json:"players"`
	Standings StandingsView                   `json:"standings"`
	Fixtures  []FixtureView                   `json:"fixtures"`
	Matches   MatchesView                     `json:"matches"`
	Squads    map[string][]string             `json:"squads"`
	Youth     YouthView                       `json:"youth"`
	Transfers TransfersView                   `json:"transfers"`
	Stats     StatsView                       `json:"stats"`
	Economy   EconomyView                     `json:"economy"`
	Mail      []core.MailMessage              `json:"mail"`
	Cups      CupsView                        `json:"cups"`
	History   map[string][]core.SeasonRecord  `json:"history"`
}
