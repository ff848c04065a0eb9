// internal/vanilla/catalog.go
package vanilla

import (
	"fmt"

	"enchrev/internal/model"
)

// Catalog is the unmodified host's enchanting data.
type Catalog struct{}

var _ model.Catalog = Catalog{}

// NewItem returns a model.Item for a registry key, or an error for keys the
// catalog does not know.
func NewItem(key string, outcomes ...model.Outcome) (*model.Item, error) {
	if _, ok := items[key]; !ok {
		return nil, fmt.Errorf("unknown item %q", key)
	}
	return &model.Item{Name: key, Outcomes: outcomes}, nil
}

// MustItem is NewItem for keys known at compile time.
func MustItem(key string, outcomes ...model.Outcome) *model.Item {
	it, err := NewItem(key, outcomes...)
	if err != nil {
		panic(err)
	}
	return it
}

func (Catalog) Enchantability(item model.Item) int32 {
	d, ok := items[item.Name]
	if !ok {
		return 0
	}
	return d.Enchantability
}

func (Catalog) Eligible(item model.Item, level int32) []model.Entry {
	d, ok := items[item.Name]
	if !ok {
		return nil
	}
	book := d.kind == kindBook
	var out []model.Entry
	for i := range registry {
		e := &registry[i]
		if e.Treasure || !(book || d.accepts(e.Category)) {
			continue
		}
		for l := e.MaxLevel; l > 0; l-- {
			if level >= e.MinCost(l) && level <= e.MaxCost(l) {
				out = append(out, model.Entry{Outcome: model.Outcome{ID: e.ID, Level: l}, Weight: e.Weight})
				break
			}
		}
	}
	return out
}

func (Catalog) Compatible(a, b int32) bool {
	if a < 0 || b < 0 || int(a) >= len(compat) || int(b) >= len(compat) {
		return false
	}
	return compat[a][b]
}

func (Catalog) Substitute(item model.Item) (model.Item, bool) {
	d, ok := items[item.Name]
	if !ok {
		return item, false
	}
	switch d.kind {
	case kindEnchantedBook:
		return model.Item{Name: "book", Outcomes: item.Outcomes}, true
	case kindBook:
		return item, true
	}
	return item, false
}

func (Catalog) Name(o model.Outcome) string {
	e, ok := Lookup(o.ID)
	if !ok {
		return fmt.Sprintf("<0x%x>", o.ID)
	}
	if o.Level == 1 && e.MaxLevel == 1 {
		return e.Name
	}
	return e.Name + " " + roman(o.Level)
}

func roman(n int32) string {
	if n >= 1 && n <= 10 {
		return [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}[n-1]
	}
	return fmt.Sprintf("enchantment.level.%d", n)
}
