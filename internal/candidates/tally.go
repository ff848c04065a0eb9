// internal/candidates/tally.go
package candidates

import (
	"slices"

	"enchrev/internal/model"
)

// Count is how many candidates have Outcome somewhere in a slot's hidden list.
type Count struct {
	model.Outcome
	N int
}

// Tally counts outcomes per slot. Lists stay short (a few dozen distinct
// outcomes at most), so a linear scan beats a map here.
type Tally struct {
	slots [3][]Count
}

// Add counts every outcome of one candidate's hidden list for slot.
func (t *Tally) Add(slot int, list []model.Outcome) {
	for _, o := range list {
		t.bump(slot, o, 1)
	}
}

func (t *Tally) bump(slot int, o model.Outcome, n int) {
	cs := t.slots[slot]
	for i := range cs {
		if cs[i].Outcome == o {
			cs[i].N += n
			return
		}
	}
	t.slots[slot] = append(cs, Count{Outcome: o, N: n})
}

// Merge folds other into t.
func (t *Tally) Merge(other *Tally) {
	for slot := range other.slots {
		for _, c := range other.slots[slot] {
			t.bump(slot, c.Outcome, c.N)
		}
	}
}

func (t *Tally) Reset() {
	for i := range t.slots {
		t.slots[i] = t.slots[i][:0]
	}
}

// Empty reports whether nothing was counted.
func (t *Tally) Empty() bool {
	return len(t.slots[0]) == 0 && len(t.slots[1]) == 0 && len(t.slots[2]) == 0
}

// Sorted returns slot's counts ordered by count, then level, then id, all
// descending, with observed moved to the front when present. The result is
// a fresh slice.
func (t *Tally) Sorted(slot int, observed model.Outcome) []Count {
	out := slices.Clone(t.slots[slot])
	slices.SortFunc(out, func(a, b Count) int {
		switch {
		case a.N != b.N:
			return b.N - a.N
		case a.Level != b.Level:
			return int(b.Level - a.Level)
		default:
			return int(b.ID - a.ID)
		}
	})
	for i, c := range out {
		if c.Outcome == observed {
			copy(out[1:i+1], out[:i])
			out[0] = c
			break
		}
	}
	return out
}
