package model

import (
	"math"
	"testing"
)

// fakeCatalog has four enchantments; 1 and 2 exclude each other.
type fakeCatalog struct {
	ench int32
}

func (c fakeCatalog) Enchantability(Item) int32 { return c.ench }

func (fakeCatalog) Eligible(_ Item, level int32) []Entry {
	out := []Entry{{Outcome{0, 1}, 10}}
	if level >= 5 {
		out = append(out, Entry{Outcome{1, level / 5}, 5})
		out = append(out, Entry{Outcome{2, 1}, 2})
	}
	if level >= 20 {
		out = append(out, Entry{Outcome{3, 1}, 1})
	}
	return out
}

func (fakeCatalog) Compatible(a, b int32) bool {
	if a == b {
		return false
	}
	return !(a == 1 && b == 2 || a == 2 && b == 1)
}

func (fakeCatalog) Substitute(it Item) (Item, bool) {
	if it.Name == "enchanted_book" {
		return Item{Name: "book"}, true
	}
	return it, it.Name == "book"
}

func (fakeCatalog) Name(o Outcome) string { return o.String() }

func TestSlotSeedWrapsBeforeWidening(t *testing.T) {
	if got := SlotSeed(0x7FFFFFFF, 1); got != math.MinInt32 {
		t.Fatalf("got %d", got)
	}
	if got := SlotSeed(0xFFFFFFFF, 1); got != 0 {
		t.Fatalf("got %d", got)
	}
	if got := SlotSeed(0xFFFFFFFE, 0); got != -2 {
		t.Fatalf("got %d", got)
	}
}

func TestRound32(t *testing.T) {
	cases := []struct {
		in   float32
		want int32
	}{
		{0.2, 1}, {-4, 1}, {2.5, 3}, {2.49, 2}, {17.5, 18}, {3e10, math.MaxInt32},
	}
	for _, c := range cases {
		if got := round32(c.in); got != c.want {
			t.Errorf("round32(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestHiddenListProperties(t *testing.T) {
	cat := fakeCatalog{ench: 10}
	elig := NewEligibility(cat, Item{Name: "sword"}, 30)
	for seed := uint32(0); seed < 2000; seed++ {
		for slot := 0; slot < 3; slot++ {
			level := int32(1 + (seed % 30))
			list := HiddenList(seed, slot, level, elig)
			if len(list) == 0 {
				t.Fatalf("seed %d slot %d: fake catalog always has an entry", seed, slot)
			}
			seen := map[int32]bool{}
			for _, o := range list {
				if seen[o.ID] {
					t.Fatalf("seed %d: duplicate id in %v", seed, list)
				}
				seen[o.ID] = true
			}
			if seen[1] && seen[2] {
				t.Fatalf("seed %d: incompatible pair in %v", seed, list)
			}
			again := HiddenList(seed, slot, level, elig)
			if len(again) != len(list) {
				t.Fatalf("seed %d: not deterministic", seed)
			}
		}
	}
}

func TestOutcomeMatchesOnlyItsClue(t *testing.T) {
	elig := NewEligibility(fakeCatalog{ench: 10}, Item{Name: "sword"}, 30)
	ro := NewRoller(elig)
	for seed := uint32(100); seed < 600; seed++ {
		list, _ := TestOutcome(seed, 1, 25, None, elig)
		hits := 0
		for _, want := range list {
			if ro.Outcome(seed, 1, 25, want) {
				hits++
			}
		}
		// distinct ids, so exactly one entry is the drawn clue
		if hits != 1 {
			t.Fatalf("seed %d: %d entries of %v matched", seed, hits, list)
		}
		if ro.Outcome(seed, 1, 25, None) {
			t.Fatalf("seed %d: None matched a non-empty list", seed)
		}
		if ro.Outcome(seed, 1, 25, Outcome{ID: 9, Level: 1}) {
			t.Fatalf("seed %d: absent outcome matched", seed)
		}
	}
}

func TestUnenchantableListIsEmpty(t *testing.T) {
	elig := NewEligibility(fakeCatalog{ench: 0}, Item{Name: "stick"}, 30)
	if elig.Enchantability() != 0 {
		t.Fatalf("enchantability")
	}
	if l := HiddenList(7, 0, 10, elig); len(l) != 0 {
		t.Fatalf("want empty, got %v", l)
	}
	if _, ok := TestOutcome(7, 0, 10, None, elig); !ok {
		t.Fatalf("empty list should match None")
	}
	if _, ok := TestOutcome(7, 0, 10, Outcome{0, 1}, elig); ok {
		t.Fatalf("empty list must not match an outcome")
	}
}

func TestBookDropsOneEntry(t *testing.T) {
	cat := fakeCatalog{ench: 10}
	plain := NewEligibility(cat, Item{Name: "tool"}, 40)
	book := NewEligibility(cat, Item{Name: "enchanted_book"}, 40)
	if book.Item().Name != "book" {
		t.Fatalf("substitution not applied: %v", book.Item())
	}
	for seed := uint32(0); seed < 3000; seed++ {
		p := HiddenList(seed, 2, 35, plain)
		b := HiddenList(seed, 2, 35, book)
		switch {
		case len(p) == 1 && len(b) != 1:
			t.Fatalf("seed %d: single entry must survive: %v vs %v", seed, p, b)
		case len(p) > 1 && len(b) != len(p)-1:
			t.Fatalf("seed %d: book should drop one: %v vs %v", seed, p, b)
		}
		for _, o := range b {
			found := false
			for _, q := range p {
				found = found || q == o
			}
			if !found {
				t.Fatalf("seed %d: %v not in %v", seed, o, p)
			}
		}
	}
}

func TestEligibilityFallsBackPastCache(t *testing.T) {
	elig := NewEligibility(fakeCatalog{ench: 1}, Item{Name: "x"}, 2)
	if got := elig.At(500); len(got) != 4 {
		t.Fatalf("uncached level should still resolve, got %v", got)
	}
}
