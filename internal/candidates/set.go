// internal/candidates/set.go
package candidates

import "slices"

// InitialCapacity is the backing size a reset shrinks back to.
const InitialCapacity = 128

// Set holds the seeds that survived every processed observation. Seeds are
// only ever removed within a sequence; a new pass replaces the whole set.
type Set struct {
	seeds []uint32
}

func NewSet() *Set { return &Set{seeds: make([]uint32, 0, InitialCapacity)} }

func (s *Set) Len() int { return len(s.seeds) }

// Seeds exposes the current contents. The slice is invalidated by the next
// mutation.
func (s *Set) Seeds() []uint32 { return s.seeds }

func (s *Set) Add(seed uint32) { s.seeds = append(s.seeds, seed) }

// Append adds a batch found by a scan worker.
func (s *Set) Append(seeds []uint32) { s.seeds = append(s.seeds, seeds...) }

// Filter keeps the seeds for which keep returns true, in place.
func (s *Set) Filter(keep func(seed uint32) bool) {
	out := s.seeds[:0]
	for _, seed := range s.seeds {
		if keep(seed) {
			out = append(out, seed)
		}
	}
	s.seeds = out
}

// Sort orders seeds ascending (unsigned).
func (s *Set) Sort() { slices.Sort(s.seeds) }

// Reset empties the set and releases any growth beyond the initial size.
func (s *Set) Reset() {
	if cap(s.seeds) > InitialCapacity {
		s.seeds = make([]uint32, 0, InitialCapacity)
		return
	}
	s.seeds = s.seeds[:0]
}
