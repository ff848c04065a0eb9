// internal/state/state.go
package state

import (
	"fmt"
	"strings"
	"sync/atomic"

	"enchrev/internal/observation"
	"enchrev/internal/version"
)

// ErrorPrefix is the host's red formatting code. A status starting with it
// is an error message.
const ErrorPrefix = "§c"

// Status messages.
var (
	DefaultStatus = fmt.Sprintf("enchrev %s", version.Version)
	ErrorStatus   = ErrorPrefix + "Seed deduction failed, see log for details"
)

// CalculatingStatus is shown while a scan is at percent.
func CalculatingStatus(percent int) string { return fmt.Sprintf("Calculating... %d%%", percent) }

// RestingStatus summarises a finished narrowing.
func RestingStatus(seeds []uint32) string {
	switch len(seeds) {
	case 0:
		return DefaultStatus
	case 1:
		return fmt.Sprintf("Seed: 0x%08X", seeds[0])
	}
	return fmt.Sprintf("%d possible seeds", len(seeds))
}

// State is one published snapshot. Never modify a State after Store.
//
// Names and Counts are sliced per slot. Counts[i][0] is the number of
// candidates for the observed outcome and doubles as the denominator.
type State struct {
	Status      string
	Names       [3][]string
	Counts      [3][]int
	Observation *observation.Observation

	Candidates int
	Seed       uint32 // the deduced seed when Candidates == 1
	Progress   int    // percent, -1 when not scanning
	Err        error  // set on error states; wraps one of the engine's sentinels
}

// Default is the "no data" sentinel. Compare by identity.
var Default = &State{Status: DefaultStatus, Progress: -1}

func (s *State) IsError() bool { return strings.HasPrefix(s.Status, ErrorPrefix) }

// WithObservation keeps s's message but attaches obs. The per-slot data is
// dropped since it described a different observation.
func (s *State) WithObservation(obs *observation.Observation) *State {
	return &State{Status: s.Status, Observation: obs, Candidates: s.Candidates, Progress: -1}
}

// Publisher hands snapshots from the engine to readers without locking.
type Publisher struct {
	cur atomic.Pointer[State]
}

func NewPublisher() *Publisher {
	p := &Publisher{}
	p.cur.Store(Default)
	return p
}

func (p *Publisher) Load() *State { return p.cur.Load() }

func (p *Publisher) Store(s *State) { p.cur.Store(s) }
