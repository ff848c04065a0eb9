// internal/observation/observation.go
package observation

import (
	"fmt"
	"strings"
	"time"

	"enchrev/internal/model"
)

const (
	// ResetPower marks a final pick: the slot was clicked and the sequence
	// ends. TruncatedSeed then holds the chosen slot index.
	ResetPower int32 = -1
	// UnsetPower is the default before the table reports a power.
	UnsetPower int32 = -2
)

// Observation is one measurement from the host table. Treat it as
// immutable once handed to the engine.
type Observation struct {
	TruncatedSeed uint16
	Power         int32
	Levels        [3]int32
	OutcomeIDs    [3]int32
	OutcomeLevels [3]int32
	Item          *model.Item

	// Diagnostic only; ignored by Equal.
	Timestamp time.Time
	Tick      int64
}

// New returns an observation with the host's defaults.
func New() *Observation {
	return &Observation{
		Power:         UnsetPower,
		OutcomeIDs:    [3]int32{-1, -1, -1},
		OutcomeLevels: [3]int32{-1, -1, -1},
	}
}

// NewFinalPick records that slot was chosen while the table showed levels.
func NewFinalPick(slot int, levels [3]int32) *Observation {
	o := New()
	o.Power = ResetPower
	o.TruncatedSeed = uint16(slot)
	o.Levels = levels
	return o
}

func (o *Observation) HasOutcomes() bool { return o.Item != nil && o.Levels[0] != 0 }

func (o *Observation) IsFinalPick() bool { return o.Power == ResetPower }

// Outcome returns the clue shown for slot.
func (o *Observation) Outcome(slot int) model.Outcome {
	return model.Outcome{ID: o.OutcomeIDs[slot], Level: o.OutcomeLevels[slot]}
}

// MaxLevel is the largest slot level shown.
func (o *Observation) MaxLevel() int32 {
	return max(o.Levels[0], o.Levels[1], o.Levels[2])
}

// Merge copies the seed-side fields of other into o.
func (o *Observation) Merge(other *Observation) {
	o.TruncatedSeed = other.TruncatedSeed
	o.Levels = other.Levels
	o.OutcomeIDs = other.OutcomeIDs
	o.OutcomeLevels = other.OutcomeLevels
}

// Clone returns a copy that shares the item.
func (o *Observation) Clone() *Observation {
	c := *o
	return &c
}

// Equal compares every field except Timestamp and Tick. Items compare by
// registry name.
func (o *Observation) Equal(other *Observation) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	if o.OutcomeIDs != other.OutcomeIDs || o.OutcomeLevels != other.OutcomeLevels {
		return false
	}
	if (o.Item == nil) != (other.Item == nil) {
		return false
	}
	if o.Item != nil && o.Item.Name != other.Item.Name {
		return false
	}
	return o.Levels == other.Levels && o.Power == other.Power && o.TruncatedSeed == other.TruncatedSeed
}

// Namer renders outcomes for diagnostics; model.Catalog satisfies it.
type Namer interface {
	Name(o model.Outcome) string
}

func (o *Observation) String() string { return o.Format(nil) }

// Format renders o for a diagnostic dump. With a nil Namer outcomes are
// printed as raw ids.
func (o *Observation) Format(n Namer) string {
	var b strings.Builder
	if o.IsFinalPick() {
		fmt.Fprintf(&b, "EnchantObservation(chosenSlot: %d, observedEnchants: ", o.TruncatedSeed)
		var applied []model.Outcome
		if o.Item != nil {
			applied = o.Item.Outcomes
		}
		formatOutcomes(&b, applied, n)
	} else {
		fmt.Fprintf(&b, "Observation(seed: 0x%04X, power: %d, enchants: ", o.TruncatedSeed, o.Power)
		formatOutcomes(&b, []model.Outcome{o.Outcome(0), o.Outcome(1), o.Outcome(2)}, n)
	}
	fmt.Fprintf(&b, ", levels: [%d, %d, %d], item: ", o.Levels[0], o.Levels[1], o.Levels[2])
	if o.Item == nil {
		b.WriteString("null")
	} else {
		b.WriteString(o.Item.Name)
	}
	b.WriteString(", now: ")
	if o.Timestamp.IsZero() {
		b.WriteString("-")
	} else {
		b.WriteString(o.Timestamp.Format("2006-01-02 15:04:05.000-0700"))
	}
	b.WriteString(")")
	return b.String()
}

func formatOutcomes(b *strings.Builder, list []model.Outcome, n Namer) {
	b.WriteByte('[')
	for i, oc := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		switch {
		case oc.IsNone():
			b.WriteString("-1")
		case n != nil:
			fmt.Fprintf(b, "%q (0x%x)", n.Name(oc), oc.ID)
		default:
			fmt.Fprintf(b, "0x%x %d", oc.ID, oc.Level)
		}
	}
	b.WriteByte(']')
}
