// internal/model/pick.go
package model

import (
	"math"

	"enchrev/internal/jrand"
)

// Eligibility caches Catalog.Eligible for one item across every modified
// level a scan can reach. It is read-only after construction and safe to
// share between scan workers.
type Eligibility struct {
	cat            Catalog
	item           Item // after substitution
	book           bool
	enchantability int32
	lists          [][]Entry
}

// NewEligibility pre-computes lists for every modified level reachable from
// observed levels up to maxLevel.
func NewEligibility(cat Catalog, item Item, maxLevel int32) *Eligibility {
	base, book := cat.Substitute(item)
	e := &Eligibility{
		cat:            cat,
		item:           base,
		book:           book,
		enchantability: cat.Enchantability(base),
	}
	if e.enchantability <= 0 {
		return e
	}
	top := modifiedCeiling(maxLevel, e.enchantability)
	e.lists = make([][]Entry, top+1)
	for lvl := int32(1); lvl <= top; lvl++ {
		e.lists[lvl] = cat.Eligible(base, lvl)
	}
	return e
}

// modifiedCeiling bounds round((level + 1 + 2*(ench/4)) * 1.15).
func modifiedCeiling(level, enchantability int32) int32 {
	if level < 0 {
		level = 0
	}
	return int32(float64(level+1+2*(enchantability/4))*1.15) + 1
}

func (e *Eligibility) Item() Item             { return e.item }
func (e *Eligibility) Enchantability() int32 { return e.enchantability }

// At returns the eligible entries for a modified level. Callers must not
// modify the result.
func (e *Eligibility) At(level int32) []Entry {
	if level >= 0 && int(level) < len(e.lists) {
		return e.lists[level]
	}
	return e.cat.Eligible(e.item, level)
}

// SlotSeed is the seed the host uses for a slot's list: the slot index is
// added in wrapping 32-bit arithmetic and only then widened. The widening
// happens after the addition, so it never carries into bit 32.
func SlotSeed(seed uint32, slot int) int64 {
	return int64(int32(seed) + int32(slot))
}

// Roller builds hidden lists with reusable scratch space. One Roller per
// goroutine.
type Roller struct {
	r     jrand.Random
	elig  *Eligibility
	work  []Entry
	lists [3][]Outcome
}

func NewRoller(elig *Eligibility) *Roller {
	return &Roller{elig: elig}
}

// List returns the last list built for slot. It is overwritten by the next
// Slot call for the same slot.
func (ro *Roller) List(slot int) []Outcome { return ro.lists[slot] }

// Draw takes the next bounded draw, e.g. the clue index after Slot.
func (ro *Roller) Draw(bound int32) int32 { return ro.r.NextInt(bound) }

// Slot builds the hidden list behind slot for a table showing level. The
// generator is left positioned for the clue draw.
func (ro *Roller) Slot(seed uint32, slot int, level int32) []Outcome {
	ro.r.SetSeed(SlotSeed(seed, slot))
	out := ro.build(ro.lists[slot][:0], level)
	if ro.elig.book && len(out) > 1 {
		i := ro.r.NextInt(int32(len(out)))
		out = append(out[:i], out[i+1:]...)
	}
	ro.lists[slot] = out
	return out
}

// Outcome reports whether the clue drawn from slot's list equals want. An
// empty list matches only the None clue.
func (ro *Roller) Outcome(seed uint32, slot int, level int32, want Outcome) bool {
	list := ro.Slot(seed, slot, level)
	if len(list) == 0 {
		return want.IsNone()
	}
	if want.IsNone() {
		return false
	}
	return list[ro.r.NextInt(int32(len(list)))] == want
}

func (ro *Roller) build(out []Outcome, level int32) []Outcome {
	r := &ro.r
	ench := ro.elig.enchantability
	if ench <= 0 {
		return out
	}
	q := ench/4 + 1
	b1 := r.NextInt(q)
	b2 := r.NextInt(q)
	level = level + 1 + b1 + b2

	f1 := r.NextFloat()
	f2 := r.NextFloat()
	f := (f1 + f2 - 1) * 0.15
	lf := float32(level)
	// The explicit conversion keeps the compiler from fusing the
	// multiply-add; the host rounds after each float32 operation.
	level = round32(lf + float32(lf*f))

	avail := ro.elig.At(level)
	if len(avail) == 0 {
		return out
	}
	ro.work = append(ro.work[:0], avail...)
	pick, ok := weighted(r, ro.work)
	if !ok {
		return out
	}
	out = append(out, pick)
	for r.NextInt(50) <= level {
		ro.work = dropIncompatible(ro.elig.cat, ro.work, pick.ID)
		if len(ro.work) == 0 {
			break
		}
		pick, _ = weighted(r, ro.work)
		out = append(out, pick)
		level /= 2
	}
	return out
}

// round32 is the host's float rounding (half up) clamped to [1, MaxInt32].
func round32(x float32) int32 {
	v := math.Floor(float64(x) + 0.5)
	if v < 1 {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}

func weighted(r *jrand.Random, list []Entry) (Outcome, bool) {
	var total int32
	for _, e := range list {
		total += e.Weight
	}
	if total <= 0 {
		return None, false
	}
	w := r.NextInt(total)
	for _, e := range list {
		w -= e.Weight
		if w < 0 {
			return e.Outcome, true
		}
	}
	return None, false
}

func dropIncompatible(cat Catalog, list []Entry, last int32) []Entry {
	kept := list[:0]
	for _, e := range list {
		if cat.Compatible(last, e.ID) {
			kept = append(kept, e)
		}
	}
	return kept
}

// TestOutcome checks one slot of seed against the observed clue and returns
// the hidden list it built. The list is a fresh copy.
func TestOutcome(seed uint32, slot int, level int32, want Outcome, elig *Eligibility) ([]Outcome, bool) {
	ro := NewRoller(elig)
	ok := ro.Outcome(seed, slot, level, want)
	return append([]Outcome(nil), ro.List(slot)...), ok
}

// HiddenList is the full list the host would apply if slot were chosen.
func HiddenList(seed uint32, slot int, level int32, elig *Eligibility) []Outcome {
	ro := NewRoller(elig)
	return append([]Outcome(nil), ro.Slot(seed, slot, level)...)
}
