package vanilla

import (
	"reflect"
	"testing"

	"enchrev/internal/model"
)

func TestRegistryIDsAreIndices(t *testing.T) {
	for i, e := range Enchantments() {
		if int(e.ID) != i {
			t.Fatalf("%s: id %d at index %d", e.Key, e.ID, i)
		}
	}
	if e, ok := ByKey("unbreaking"); !ok || e.ID != 0x14 {
		t.Fatalf("unbreaking should be 0x14, got %+v", e)
	}
}

func TestEligibleLeggings(t *testing.T) {
	got := Catalog{}.Eligible(model.Item{Name: "diamond_leggings"}, 12)
	want := []model.Outcome{{ID: 0, Level: 2}, {ID: 1, Level: 1}, {ID: 3, Level: 1}, {ID: 4, Level: 2}, {ID: 20, Level: 1}}
	var ids []model.Outcome
	for _, e := range got {
		ids = append(ids, e.Outcome)
	}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("eligible at 12: got %v want %v", ids, want)
	}
	if got[0].Weight != Common || got[2].Weight != Rare {
		t.Fatalf("weights: %+v", got)
	}
}

func TestEligibleSkipsTreasureAndWrongCategory(t *testing.T) {
	for _, e := range (Catalog{}).Eligible(model.Item{Name: "diamond_boots"}, 30) {
		if e.ID == idFrostWalker {
			t.Fatalf("frost walker is treasure")
		}
		if e.ID == 7 {
			t.Fatalf("thorns is chest-only at the table")
		}
	}
	if got := (Catalog{}).Eligible(model.Item{Name: "fishing_rod"}, 2); len(got) != 0 {
		t.Fatalf("rod at 2 should have nothing, got %v", got)
	}
}

func TestBookAcceptsEverything(t *testing.T) {
	got := Catalog{}.Eligible(model.Item{Name: "book"}, 20)
	seen := map[Category]bool{}
	for _, e := range got {
		ench, _ := Lookup(e.ID)
		seen[ench.Category] = true
	}
	for _, c := range []Category{CatArmor, CatWeapon, CatDigger, CatBow, CatFishingRod, CatTrident} {
		if !seen[c] {
			t.Fatalf("book list missing category %d: %v", c, got)
		}
	}
}

func TestCompatible(t *testing.T) {
	cat := Catalog{}
	cases := []struct {
		a, b int32
		want bool
	}{
		{0, 1, false},  // protection / fire protection
		{0, 2, true},   // feather falling mixes with any protection
		{3, 4, false},  // blast / projectile
		{11, 12, false}, // sharpness / smite
		{19, 21, false}, // silk touch / fortune
		{21, 19, false},
		{0, 20, true},
		{20, 20, false},
		{28, 30, false}, // loyalty / riptide
		{30, 31, false}, // riptide / channeling
		{28, 31, true},
	}
	for _, c := range cases {
		if got := cat.Compatible(c.a, c.b); got != c.want {
			t.Errorf("Compatible(%d,%d) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSubstituteAndEnchantability(t *testing.T) {
	cat := Catalog{}
	base, book := cat.Substitute(model.Item{Name: "enchanted_book"})
	if base.Name != "book" || !book {
		t.Fatalf("enchanted book should roll as book, got %v %v", base, book)
	}
	if _, book := cat.Substitute(model.Item{Name: "diamond_sword"}); book {
		t.Fatalf("sword is not a book")
	}
	if cat.Enchantability(model.Item{Name: "iron_hoe"}) != 0 {
		t.Fatalf("hoes are unenchantable at the table")
	}
	if cat.Enchantability(model.Item{Name: "golden_boots"}) != 25 {
		t.Fatalf("gold armor enchantability")
	}
	if cat.Enchantability(model.Item{Name: "nope"}) != 0 {
		t.Fatalf("unknown items are unenchantable")
	}
}

func TestNames(t *testing.T) {
	cat := Catalog{}
	if got := cat.Name(model.Outcome{ID: 20, Level: 1}); got != "Unbreaking I" {
		t.Fatalf("got %q", got)
	}
	if got := cat.Name(model.Outcome{ID: 19, Level: 1}); got != "Silk Touch" {
		t.Fatalf("got %q", got)
	}
	if got := cat.Name(model.Outcome{ID: 0, Level: 4}); got != "Protection IV" {
		t.Fatalf("got %q", got)
	}
	if _, err := NewItem("not_an_item"); err == nil {
		t.Fatalf("expected unknown item error")
	}
}
