// internal/table/table.go
package table

import (
	"enchrev/internal/jrand"
	"enchrev/internal/model"
	"enchrev/internal/observation"
)

// SeedMask is what the host leaves of the seed when it shows the hint.
const SeedMask = 0xFFF0

// Prediction is what a table shows, and hides, for one known seed.
type Prediction struct {
	Seed        uint32
	Observation *observation.Observation
	Lists       [3][]model.Outcome // hidden list per slot; nil for empty slots
}

// Predict runs the host's table logic for seed. It is the forward direction
// of the engine's search and shares the same generators.
func Predict(cat model.Catalog, seed uint32, power int32, item *model.Item) Prediction {
	r := &jrand.Random{}
	levels := model.Levels(r, seed, power, cat.Enchantability(*item))

	obs := observation.New()
	obs.TruncatedSeed = uint16(seed) & SeedMask
	obs.Power = power
	obs.Levels = levels
	obs.Item = item

	p := Prediction{Seed: seed, Observation: obs}
	ro := model.NewRoller(model.NewEligibility(cat, *item, obs.MaxLevel()))
	for slot := 0; slot < 3; slot++ {
		if levels[slot] == 0 {
			continue
		}
		list := ro.Slot(seed, slot, levels[slot])
		p.Lists[slot] = append([]model.Outcome(nil), list...)
		if len(list) == 0 {
			continue
		}
		clue := list[ro.Draw(int32(len(list)))]
		obs.OutcomeIDs[slot] = clue.ID
		obs.OutcomeLevels[slot] = clue.Level
	}
	return p
}

// Enchant is the final pick the host reports after slot is clicked. Books
// come back as enchanted books.
func (p Prediction) Enchant(slot int) *observation.Observation {
	pick := observation.NewFinalPick(slot, p.Observation.Levels)
	item := *p.Observation.Item
	if item.Name == "book" {
		item.Name = "enchanted_book"
	}
	item.Outcomes = append([]model.Outcome(nil), p.Lists[slot]...)
	pick.Item = &item
	return pick
}
