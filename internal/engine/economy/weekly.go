package economy

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

const (
	baseWeeklyIncome int64 = 600_000
	minListings            = 10
	sellableMinSkill       = 4
)

// WeeklyResult reports what process_weekly happened so callers can build
// mailbox entries/log lines without re-deriving them.
type WeeklyResult struct {
	Ledger   []core.LedgerEntry
	Mail     []core.MailMessage
	Signings int
}

// ProcessWeekly runs §4.6's weekly cycle: sponsor income, market refresh,
// bot signings, revaluation. season/week stamp the ledger entries.
// nextID is the career's persisted id counter (world.Meta.NextGeneratedPlayerID)
// used to mint any free agent this cycle creates.
func ProcessWeekly(r *rng.Source, league *core.League, market *[]core.MarketListing, season, week int, seasonStats map[int]*core.PlayerSeasonStats, nextID *int) WeeklyResult {
	var out WeeklyResult

	clubs := league.AllClubs()
	for _, c := range clubs {
		c.Cash += baseWeeklyIncome
		out.Ledger = append(out.Ledger, core.LedgerEntry{
			Date:   core.LedgerDate{Season: season, Week: week},
			ClubID: c.ClubID, Club: c.Name,
			Type: "income", Label: "weekly_sponsor", Amount: baseWeeklyIncome,
		})
	}

	refreshMarket(r, clubs, market, seasonStats, nextID)
	out.Signings = runBotSignings(r, clubs, market, &out.Ledger, season, week)

	RevalueAll(clubs, seasonStats)
	return out
}

func refreshMarket(r *rng.Source, clubs []*core.Club, market *[]core.MarketListing, seasonStats map[int]*core.PlayerSeasonStats, nextID *int) {
	kept := (*market)[:0]
	for _, l := range *market {
		if l.FreeAgent {
			kept = append(kept, l)
			continue
		}
		if c := clubByName(clubs, l.SellerClub); c != nil && c.PlayerByID(l.PlayerSnapshot.ID) != nil {
			kept = append(kept, l)
		}
	}
	*market = kept

	for len(*market) < minListings {
		if r.Chance(0.3) {
			*market = append(*market, freeAgentListing(r, nextID))
			continue
		}
		listing, ok := randomClubListing(r, clubs, seasonStats)
		if !ok {
			break
		}
		*market = append(*market, listing)
	}
}

func freeAgentListing(r *rng.Source, nextID *int) core.MarketListing {
	p := generateFreeAgent(r, nextID)
	return core.MarketListing{PlayerSnapshot: p, FreeAgent: true, Price: Valuate(&p, nil)}
}

func randomClubListing(r *rng.Source, clubs []*core.Club, seasonStats map[int]*core.PlayerSeasonStats) (core.MarketListing, bool) {
	sellable := make([]*core.Club, 0, len(clubs))
	for _, c := range clubs {
		for _, p := range c.Players {
			if p.SkillOpen >= sellableMinSkill {
				sellable = append(sellable, c)
				break
			}
		}
	}
	if len(sellable) == 0 {
		return core.MarketListing{}, false
	}
	c := sellable[r.IntN(len(sellable))]
	var candidates []*core.Player
	for _, p := range c.Players {
		if p.SkillOpen >= sellableMinSkill {
			candidates = append(candidates, p)
		}
	}
	p := candidates[r.IntN(len(candidates))]
	price := int64(float64(Valuate(p, seasonStats[p.ID])) * r.Uniform(0.9, 1.2))
	return core.MarketListing{PlayerSnapshot: *p, SellerClub: c.Name, Price: price}, true
}

func runBotSignings(r *rng.Source, clubs []*core.Club, market *[]core.MarketListing, ledger *[]core.LedgerEntry, season, week int) int {
	signings := 0
	remaining := (*market)[:0]
	for _, l := range *market {
		chance := 0.04
		if l.FreeAgent {
			chance = 0.08
		}
		if !r.Chance(chance) {
			remaining = append(remaining, l)
			continue
		}
		buyer := pickBuyer(r, clubs, l)
		if buyer == nil {
			remaining = append(remaining, l)
			continue
		}
		if err := Purchase(buyer, clubByName(clubs, l.SellerClub), &l, ledger, season, week); err != nil {
			remaining = append(remaining, l)
			continue
		}
		signings++
	}
	*market = remaining
	return signings
}

func pickBuyer(r *rng.Source, clubs []*core.Club, l core.MarketListing) *core.Club {
	var candidates []*core.Club
	for _, c := range clubs {
		if c.Name == l.SellerClub {
			continue
		}
		if float64(c.Cash) > float64(l.Price)*1.3 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[r.IntN(len(candidates))]
}

func clubByName(clubs []*core.Club, name string) *core.Club {
	for _, c := range clubs {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// generateFreeAgent mints a new free agent using and bumping nextID, the
// career's persisted id counter, so ids stay unique across process
// restarts (world.Meta.NextGeneratedPlayerID).
func generateFreeAgent(r *rng.Source, nextID *int) core.Player {
	*nextID++
	pos := []core.Position{core.GK, core.DF, core.MF, core.FW}[r.IntN(4)]
	return core.Player{
		ID:          *nextID,
		First:       "Free",
		Last:        "Agent",
		Age:         18 + r.IntN(15),
		Position:    pos,
		Number:      0,
		SkillOpen:   3 + r.IntN(10),
		SkillHidden: 20 + r.IntN(40),
		FormNow:     9 + r.IntN(3),
		FormSeason:  10,
	}
}
