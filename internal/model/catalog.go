// internal/model/catalog.go
package model

import "fmt"

// Outcome is one enchantment at one level. ID -1 means "no outcome".
type Outcome struct {
	ID    int32
	Level int32
}

// None is the clue the host sends for a slot whose hidden list is empty.
var None = Outcome{ID: -1}

func (o Outcome) IsNone() bool { return o.ID < 0 }

func (o Outcome) String() string {
	if o.IsNone() {
		return "-1"
	}
	return fmt.Sprintf("(0x%x %d)", o.ID, o.Level)
}

// Entry is an eligible outcome together with its pick weight.
type Entry struct {
	Outcome
	Weight int32
}

// Item is an opaque reference to the thing on the table. Name is the host
// registry key; Outcomes is only set on a finished (enchanted) item.
type Item struct {
	Name     string
	Outcomes []Outcome
}

// Catalog is the adapter a host collaborator implements. The engine reads
// host data through it and nothing else.
type Catalog interface {
	// Enchantability is the item's intrinsic property; <= 0 means the table
	// cannot enchant it.
	Enchantability(item Item) int32
	// Eligible lists, in registry order, the highest level of every
	// non-treasure enchantment whose window contains level and whose
	// category accepts item.
	Eligible(item Item, level int32) []Entry
	// Compatible reports whether a and b may share one item (symmetric).
	Compatible(a, b int32) bool
	// Substitute maps aliased items to the form the generator sees. book is
	// true when the generator drops one random entry from multi-entry lists.
	Substitute(item Item) (base Item, book bool)
	// Name renders an outcome for display, e.g. "Unbreaking I".
	Name(o Outcome) string
}
