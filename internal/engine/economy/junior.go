package economy

import (
	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/engine/rng"
)

// RollJuniorOffers generates 1-3 youth-intake offers for one club, per
// §4.6: each offer carries a full player snapshot, a price of value*0.6,
// and expires at the end of next season. nextID is the career's
// persisted id counter (world.Meta.NextGeneratedPlayerID): it is bumped
// in place so every minted offer, across every call this process or a
// later one makes against the same save, gets a unique player id.
func RollJuniorOffers(r *rng.Source, currentSeason int, nextID *int) []core.JuniorOffer {
	n := 1 + r.IntN(3)
	offers := make([]core.JuniorOffer, 0, n)
	for i := 0; i < n; i++ {
		*nextID++
		p := generateJunior(r, *nextID)
		price := int64(float64(Valuate(&p, nil)) * 0.6)
		offers = append(offers, core.JuniorOffer{
			ID: *nextID, PlayerSnapshot: p, Price: price,
			ExpiresSeason: currentSeason + 1,
		})
	}
	return offers
}

func generateJunior(r *rng.Source, id int) core.Player {
	pos := []core.Position{core.GK, core.DF, core.MF, core.FW}[r.IntN(4)]
	return core.Player{
		ID: id, First: "Junior", Last: "Talang",
		Age: 16 + r.IntN(3), Position: pos,
		SkillOpen: 2 + r.IntN(6), SkillHidden: 10 + r.IntN(30),
		FormNow: 9 + r.IntN(3), FormSeason: 10,
		Traits: maybeTrainable(r),
	}
}

func maybeTrainable(r *rng.Source) []core.Trait {
	if r.Chance(0.4) {
		return []core.Trait{core.TraitTrainable}
	}
	return nil
}

// PruneExpiredOffers removes offers whose ExpiresSeason is before
// currentSeason.
func PruneExpiredOffers(offers []core.JuniorOffer, currentSeason int) []core.JuniorOffer {
	kept := offers[:0]
	for _, o := range offers {
		if o.ExpiresSeason >= currentSeason {
			kept = append(kept, o)
		}
	}
	return kept
}

// AcceptJuniorOffer materialises the offer's player into the club,
// deducts the price, and removes the offer, subject to squad invariants
// and cash.
func AcceptJuniorOffer(c *core.Club, offers *[]core.JuniorOffer, offerID int, ledger *[]core.LedgerEntry, season, week int) error {
	idx := -1
	for i, o := range *offers {
		if o.ID == offerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.NewNotFoundError("junior_offer", "")
	}
	o := (*offers)[idx]
	if c.Cash < o.Price {
		return core.NewDomainRuleError("insufficient_cash", "club cannot afford junior offer")
	}
	if len(c.Players)+1 > core.MaxSquad {
		return core.NewDomainRuleError("squad_size", "squad would exceed maximum size")
	}
	player := o.PlayerSnapshot
	c.Cash -= o.Price
	c.Players = append(c.Players, &player)
	*offers = append((*offers)[:idx], (*offers)[idx+1:]...)
	*ledger = append(*ledger, core.LedgerEntry{
		Date: core.LedgerDate{Season: season, Week: week}, ClubID: c.ClubID, Club: c.Name,
		Type: "expense", Label: "junior intake: " + player.Name(), Amount: -o.Price,
	})
	return nil
}
