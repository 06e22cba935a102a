// Package contract projects a GameState into the stable, external JSON
// shape described by spec §6. Every exported view type mirrors one key of
// that shape; Project is the single entrypoint a caller needs. The
// projector never mutates the world it is given.
package contract

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

// Project builds the full external contract from a loaded career. It is a
// pure function: no field of w is written to.
func Project(w *world.GameState) *Contract {
	teamIDs := NewTeamIDAssigner()
	clubsByID := map[string]*core.Club{}
	for _, c := range w.League.AllClubs() {
		teamIDs.Assign(c.Name)
		clubsByID[c.ClubID] = c
	}
	idsByName := teamIDs.NameToID()

	league := buildLeagueView(w, idsByName)
	teams := buildTeamViews(w, idsByName)
	players, squads := buildPlayerAndSquadViews(w, idsByName)
	fixtures := buildFixtureViews(w)
	matches := buildMatchesView(w)
	standings := buildStandings(w.MatchLog)
	youth := buildYouthView(w)
	transfers := buildTransfersView(w)
	statsView := buildStatsView(w, idsByName)
	economy := buildEconomyView(w, idsByName, clubsByID)
	cups := buildCupsView(w)

	userTeamID := ""
	if club := clubsByID[w.Meta.UserTeamID]; club != nil {
		userTeamID = idsByName[club.Name]
	}

	return &Contract{
		Meta: MetaView{
			Version:     w.Meta.Version,
			CareerID:    w.Meta.CareerID,
			UserTeamID:  userTeamID,
			DisplayName: w.Meta.DisplayName,
		},
		Options:   w.Options,
		Season:    SeasonView{Year: w.Season, Phase: string(w.SeasonPhase), RoundCurrent: w.CurrentRound, CalendarWeek: w.CalendarWeek},
		League:    league,
		Teams:     teams,
		Players:   players,
		Standings: standings,
		Fixtures:  fixtures,
		Matches:   matches,
		Squads:    squads,
		Youth:     youth,
		Transfers: transfers,
		Stats:     statsView,
		Economy:   economy,
		Mail:      flattenMail(w),
		Cups:      cups,
		History:   w.History,
	}
}

func buildLeagueView(w *world.GameState, idsByName map[string]string) LeagueView {
	divisions := make([]DivisionView, 0, len(w.League.Divisions))
	for _, d := range w.League.Divisions {
		teams := make([]string, 0, len(d.Clubs))
		for _, c := range d.Clubs {
			teams = append(teams, idsByName[c.Name])
		}
		divisions = append(divisions, DivisionView{Name: d.Name, Level: d.Level, Teams: teams})
	}
	return LeagueView{Name: w.League.Name, Structure: string(w.League.Rules.Format), Divisions: divisions}
}

func buildTeamViews(w *world.GameState, idsByName map[string]string) []TeamView {
	var out []TeamView
	for _, d := range w.League.Divisions {
		for _, c := range d.Clubs {
			out = append(out, TeamView{
				ID:             idsByName[c.Name],
				Name:           c.Name,
				DivisionName:   d.Name,
				Cash:           c.Cash,
				Stadium:        c.Stadium,
				Manager:        c.Manager,
				Tactic:         c.Tactic,
				Aggressiveness: c.Aggressiveness,
			})
		}
	}
	return out
}

func buildPlayerAndSquadViews(w *world.GameState, idsByName map[string]string) ([]PlayerView, map[string][]string) {
	var players []PlayerView
	squads := map[string][]string{}
	for _, c := range w.League.AllClubs() {
		teamID := idsByName[c.Name]
		ids := make([]string, 0, len(c.Players))
		for _, p := range c.Players {
			pid := PlayerID(p.ID)
			ids = append(ids, pid)
			isCaptain := c.CaptainID != nil && *c.CaptainID == p.ID
			players = append(players, PlayerView{
				ID: pid, TeamID: teamID,
				FirstName: p.First, LastName: p.Last,
				Age: p.Age, Position: p.Position, Number: p.Number,
				SkillOpen: p.SkillOpen, FormNow: p.FormNow,
				Traits: p.Traits, ValueSEK: p.ValueSEK, IsCaptain: isCaptain,
			})
		}
		squads[teamID] = ids
	}
	return players, squads
}

func buildFixtureViews(w *world.GameState) []FixtureView {
	played := map[string]bool{}
	for _, rec := range w.MatchLog {
		played[fixtureKey(rec.Competition, rec.Round, rec.HomeName, rec.AwayName)] = true
	}

	var out []FixtureView
	for _, fixtures := range w.FixturesByDivision {
		for _, m := range fixtures {
			status := "scheduled"
			if played[fixtureKey(core.CompetitionLeague, m.Round, m.Home, m.Away)] {
				status = "final"
			}
			out = append(out, FixtureView{
				ID:          MatchID(core.CompetitionLeague, m.Round, m.Home, m.Away),
				Competition: string(core.CompetitionLeague),
				Round:       m.Round, Home: m.Home, Away: m.Away, Status: status,
			})
		}
	}
	return out
}

func fixtureKey(competition core.Competition, round int, home, away string) string {
	return string(competition) + "|" + MatchID(competition, round, home, away)
}

func buildMatchesView(w *world.GameState) MatchesView {
	byID := make(map[string]*core.MatchRecord, len(w.MatchLog))
	for _, rec := range w.MatchLog {
		byID[MatchID(rec.Competition, rec.Round, rec.HomeName, rec.AwayName)] = rec
	}
	return MatchesView{ByID: byID}
}

func buildYouthView(w *world.GameState) YouthView {
	return YouthView{
		Offers:     w.JuniorOffers,
		Accepted:   []core.JuniorOffer{},
		Preference: w.Options["youth_preference"],
	}
}

func buildTransfersView(w *world.GameState) TransfersView {
	var arrivals, departures []core.LedgerEntry
	for _, e := range w.EconomyLedger {
		switch e.Type {
		case "transfer_in":
			arrivals = append(arrivals, e)
		case "transfer_out":
			departures = append(departures, e)
		}
	}
	return TransfersView{Market: w.TransferList, Arrivals: arrivals, Departures: departures}
}

func buildStatsView(w *world.GameState, idsByName map[string]string) StatsView {
	lookup := newPlayerLookup(w.League)

	currentPlayers := flattenPlayerStats(w.PlayerStats)
	allPlayers := flattenPlayerStats(w.PlayerCareerStats)
	currentClubs := flattenClubStats(w.ClubStats)
	allClubs := flattenClubStats(w.ClubCareerStats)

	return StatsView{
		PlayersCurrent: currentPlayers,
		PlayersAll:     allPlayers,
		ClubCurrent:    currentClubs,
		ClubAll:        allClubs,
		Leaders:        buildLeaders(lookup, idsByName, w.PlayerStats),
		BestEleven:     buildBestEleven(lookup, w.PlayerStats),
	}
}

func flattenPlayerStats(m map[int]*core.PlayerSeasonStats) []core.PlayerSeasonStats {
	out := make([]core.PlayerSeasonStats, 0, len(m))
	for _, s := range m {
		out = append(out, *s)
	}
	return out
}

func flattenClubStats(m map[string]*core.ClubSeasonStats) []core.ClubSeasonStats {
	out := make([]core.ClubSeasonStats, 0, len(m))
	for _, s := range m {
		out = append(out, *s)
	}
	return out
}

func buildEconomyView(w *world.GameState, idsByName map[string]string, clubsByID map[string]*core.Club) EconomyView {
	club := clubsByID[w.Meta.UserTeamID]
	if club == nil {
		return EconomyView{Ledger: []core.LedgerEntry{}}
	}
	var ledger []core.LedgerEntry
	for _, e := range w.EconomyLedger {
		if e.ClubID == club.ClubID || e.Club == club.Name {
			ledger = append(ledger, e)
		}
	}
	return EconomyView{TeamID: idsByName[club.Name], Balance: club.Cash, Ledger: ledger}
}

func buildCupsView(w *world.GameState) CupsView {
	if w.CupState == nil {
		return CupsView{ByID: map[string]CupView{}}
	}

	var fixtures []FixtureView
	var recs []core.MatchRecord
	for _, rec := range w.MatchLog {
		if rec.Competition != core.CompetitionCup {
			continue
		}
		recs = append(recs, *rec)
		fixtures = append(fixtures, FixtureView{
			ID:          MatchID(rec.Competition, rec.Round, rec.HomeName, rec.AwayName),
			Competition: string(core.CompetitionCup),
			Round:       rec.Round, Home: rec.HomeName, Away: rec.AwayName, Status: "final",
		})
	}

	view := CupView{
		Bracket: CupBracketView{
			TwoLegged:    w.CupState.Rules.TwoLegged,
			CurrentClubs: w.CupState.CurrentClubs,
			Finished:     w.CupState.Finished,
			Winner:       w.CupState.Winner,
			Round:        w.CupState.Round,
		},
		Fixtures: fixtures,
		Stats:    recs,
	}
	return CupsView{ByID: map[string]CupView{"primary": view}}
}

func flattenMail(w *world.GameState) []core.MailMessage {
	var out []core.MailMessage
	for _, msgs := range w.Mailbox {
		out = append(out, msgs...)
	}
	return out
}
