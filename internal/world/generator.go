package world

import (
	"fmt"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/economy"
	"github.com/apell0/managerspelet/internal/engine/rng"
	"github.com/apell0/managerspelet/internal/engine/schedule"
)

// CareerOptions configures NewCareer; grounded on the original
// generator.py's create(structure, divisions, teams_per_division,
// user_team) entrypoint (SPEC_FULL.md §12).
type CareerOptions struct {
	CareerID         string
	Structure        core.LeagueFormat // "pyramid" or "flat"
	Levels           int
	TeamsPerDivision int
	DoubleRound      bool
	PromoteCount     int
	RelegateCount    int
	UserTeamName     string
	Seed             uint64
}

var firstNames = []string{
	"Anders", "Erik", "Johan", "Lars", "Karl", "Nils", "Per", "Sven",
	"Gustav", "Olof", "Mikael", "Stefan", "Magnus", "Henrik", "Fredrik",
}

var lastNames = []string{
	"Andersson", "Johansson", "Karlsson", "Nilsson", "Eriksson",
	"Larsson", "Olsson", "Persson", "Svensson", "Gustafsson",
	"Pettersson", "Jonsson", "Jansson", "Hansson", "Bengtsson",
}

var clubNameStems = []string{
	"Norra", "Södra", "Östra", "Västra", "Central", "Kust", "Skogs",
	"Bergs", "Ström", "Fjäll", "Dal", "Sjö", "Gränd", "Parks", "Sol",
}

var clubNameSuffixes = []string{"IF", "FC", "BK", "AIK", "United", "SK"}

// NewCareer builds a fresh GameState from options: a league of divisions
// with generated clubs and squads, round-robin fixtures per division, an
// initial transfer market, and one junior offer batch, per
// SPEC_FULL.md §12.
func NewCareer(opts CareerOptions) (*GameState, error) {
	if opts.TeamsPerDivision < 2 {
		return nil, core.NewInvalidInputError("teams_per_division", "must be at least 2")
	}
	if opts.Levels < 1 {
		opts.Levels = 1
	}

	r := rng.New(opts.Seed)

	league := &core.League{
		Name: "Managerligan",
		Rules: core.LeagueRules{
			Format: opts.Structure, TeamsPerDivision: opts.TeamsPerDivision,
			Levels: opts.Levels, DoubleRound: opts.DoubleRound,
			PromoteCount: opts.PromoteCount, RelegateCount: opts.RelegateCount,
		},
	}

	playerID := 1
	clubIdx := 0
	for level := 1; level <= opts.Levels; level++ {
		divisionsAtLevel := 1
		if opts.Structure == core.FormatPyramid {
			divisionsAtLevel = level
		}
		for di := 0; di < divisionsAtLevel; di++ {
			div := &core.Division{Name: fmt.Sprintf("Division %d%s", level, divisionSuffix(di)), Level: level}
			for i := 0; i < opts.TeamsPerDivision; i++ {
				var name string
				if level == 1 && di == 0 && i == 0 && opts.UserTeamName != "" {
					name = opts.UserTeamName
				} else {
					name = generateClubName(r, clubIdx)
				}
				clubIdx++
				club := generateClub(r, &playerID, clubIdx, name)
				div.Clubs = append(div.Clubs, club)
			}
			league.Divisions = append(league.Divisions, div)
		}
	}

	nextGeneratedID := playerID
	if nextGeneratedID < 900000 {
		nextGeneratedID = 900000
	}

	w := &GameState{
		Meta: Meta{
			Version: 1, CareerID: opts.CareerID,
			UserTeamID: userTeamID(league), DisplayName: opts.UserTeamName,
			RNGSeed:               opts.Seed,
			NextGeneratedPlayerID: nextGeneratedID,
		},
		Season:       1,
		League:       league,
		SeasonPhase:  core.PhasePreseason,
		CalendarWeek: 1,
		CurrentRound: 1,
	}
	w.EnsureContainers()

	for _, d := range league.Divisions {
		w.FixturesByDivision[d.Name] = schedule.Build(d.Clubs, league.Rules.DoubleRound)
	}

	for _, c := range league.AllClubs() {
		w.JuniorOffers[c.Name] = economy.RollJuniorOffers(r, w.Season, &w.Meta.NextGeneratedPlayerID)
	}
	seedMarket(r, &w.TransferList)

	return w, nil
}

func divisionSuffix(idx int) string {
	if idx == 0 {
		return ""
	}
	return string(rune('A' + idx))
}

func userTeamID(league *core.League) string {
	clubs := league.AllClubs()
	if len(clubs) == 0 {
		return ""
	}
	return clubs[0].ClubID
}

func generateClubName(r *rng.Source, idx int) string {
	stem := clubNameStems[r.IntN(len(clubNameStems))]
	suffix := clubNameSuffixes[r.IntN(len(clubNameSuffixes))]
	return fmt.Sprintf("%s %s %d", stem, suffix, idx)
}

func generateClub(r *rng.Source, playerID *int, clubIdx int, name string) *core.Club {
	c := &core.Club{
		ClubID: fmt.Sprintf("club-%d", clubIdx),
		Name:   name,
		Cash:   2_000_000,
		Tactic: core.DefaultTactic(),
		Aggressiveness: core.AggressivenessMedium,
		Stadium: name + " Arena",
	}

	counts := map[core.Position]int{core.GK: 3, core.DF: 7, core.MF: 7, core.FW: 5}
	number := 1
	for _, pos := range []core.Position{core.GK, core.DF, core.MF, core.FW} {
		n := counts[pos]
		for i := 0; i < n; i++ {
			p := generatePlayer(r, *playerID, pos, number)
			*playerID++
			number++
			c.Players = append(c.Players, p)
		}
	}

	for i := 0; i < 11 && i < len(c.Players); i++ {
		c.PreferredLineup = append(c.PreferredLineup, c.Players[i].ID)
	}
	if len(c.Players) > 0 {
		capID := c.Players[0].ID
		c.CaptainID = &capID
	}
	return c
}

func generatePlayer(r *rng.Source, id int, pos core.Position, number int) *core.Player {
	p := &core.Player{
		ID: id, First: firstNames[r.IntN(len(firstNames))], Last: lastNames[r.IntN(len(lastNames))],
		Age: 17 + r.IntN(20), Position: pos, Number: number,
		SkillOpen: 5 + r.IntN(15), SkillHidden: 30 + r.IntN(50),
		FormNow: 9 + r.IntN(3), FormSeason: 10,
	}
	if r.Chance(0.2) {
		traits := []core.Trait{
			core.TraitLeader, core.TraitIntelligent, core.TraitFast, core.TraitStamina,
			core.TraitAggressive, core.TraitPenaltySpec, core.TraitFreekickSpec,
			core.TraitTrainable, core.TraitInjuryProne, core.TraitInconsistent, core.TraitCardProne,
		}
		p.Traits = append(p.Traits, traits[r.IntN(len(traits))])
	}
	p.ValueSEK = economy.Valuate(p, nil)
	return p
}

func seedMarket(r *rng.Source, market *[]core.MarketListing) {
	for i := 0; i < 10; i++ {
		p := generatePlayer(r, 800000+i, []core.Position{core.GK, core.DF, core.MF, core.FW}[r.IntN(4)], 0)
		*market = append(*market, core.MarketListing{PlayerSnapshot: *p, FreeAgent: true, Price: p.ValueSEK})
	}
}
