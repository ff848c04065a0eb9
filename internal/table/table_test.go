package table

import (
	"testing"

	"enchrev/internal/jrand"
	"enchrev/internal/model"
	"enchrev/internal/vanilla"
)

func TestPredictLeggings(t *testing.T) {
	p := Predict(vanilla.Catalog{}, 0x12347, 6, vanilla.MustItem("diamond_leggings"))
	o := p.Observation
	if o.TruncatedSeed != 0x2340 {
		t.Fatalf("hint 0x%x", o.TruncatedSeed)
	}
	if o.Levels != [3]int32{4, 11, 14} {
		t.Fatalf("levels %v", o.Levels)
	}
	if o.OutcomeIDs != [3]int32{0x14, 0, 1} || o.OutcomeLevels != [3]int32{1, 2, 2} {
		t.Fatalf("clues %v %v", o.OutcomeIDs, o.OutcomeLevels)
	}
}

func TestPredictFishingRodEmptySlots(t *testing.T) {
	p := Predict(vanilla.Catalog{}, 0x249e08e4, 0, vanilla.MustItem("fishing_rod"))
	o := p.Observation
	if o.TruncatedSeed != 0x08e0 || o.Levels != [3]int32{1, 3, 4} {
		t.Fatalf("got %v", o)
	}
	if o.OutcomeIDs != [3]int32{-1, -1, 0x14} || o.OutcomeLevels[2] != 1 {
		t.Fatalf("clues %v %v", o.OutcomeIDs, o.OutcomeLevels)
	}
	if len(p.Lists[0]) != 0 || len(p.Lists[1]) != 0 {
		t.Fatalf("low slots should be empty: %v", p.Lists)
	}
}

// The simulated observation must be accepted by every test the engine runs.
func TestPredictionRoundTrip(t *testing.T) {
	cat := vanilla.Catalog{}
	items := []string{"diamond_sword", "iron_pickaxe", "golden_helmet", "bow", "book", "trident", "leather_boots"}
	r := &jrand.Random{}
	for n := uint32(0); n < 300; n++ {
		seed := n * 0x9E3779B1
		power := int32(n % 16)
		item := vanilla.MustItem(items[n%uint32(len(items))])
		p := Predict(cat, seed, power, item)
		o := p.Observation
		ench := cat.Enchantability(*item)
		if !model.TestLevelsExact(r, seed, power, o.Levels, ench) || !model.TestLevelsFast(seed, power, o.Levels) {
			t.Fatalf("seed 0x%08x: level tests reject %v", seed, o.Levels)
		}
		elig := model.NewEligibility(cat, *item, o.MaxLevel())
		for slot := 0; slot < 3; slot++ {
			if o.Levels[slot] == 0 {
				continue
			}
			if _, ok := model.TestOutcome(seed, slot, o.Levels[slot], o.Outcome(slot), elig); !ok {
				t.Fatalf("seed 0x%08x slot %d: clue %v rejected", seed, slot, o.Outcome(slot))
			}
		}
	}
}

func TestEnchantBookBecomesEnchantedBook(t *testing.T) {
	p := Predict(vanilla.Catalog{}, 77, 15, vanilla.MustItem("book"))
	pick := p.Enchant(2)
	if !pick.IsFinalPick() || pick.TruncatedSeed != 2 {
		t.Fatalf("not a final pick: %v", pick)
	}
	if pick.Item.Name != "enchanted_book" || len(pick.Item.Outcomes) != len(p.Lists[2]) {
		t.Fatalf("item %+v lists %v", pick.Item, p.Lists[2])
	}
	if p.Observation.Item.Name != "book" {
		t.Fatalf("prediction item was modified")
	}
}
