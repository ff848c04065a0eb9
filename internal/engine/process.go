// internal/engine/process.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"enchrev/internal/model"
	"enchrev/internal/observation"
	"enchrev/internal/state"
)

// Sentinel errors carried by error states. Their text is the dump tag.
var (
	ErrSeedMismatch  = errors.New("seedmismatch")
	ErrExhausted     = errors.New("exhausted")
	ErrInconsistent  = errors.New("inconsistent")
	ErrUnenchantable = errors.New("unenchantable")
)

var errDescriptions = map[error]string{
	ErrSeedMismatch:  "the table showed a new seed without an enchant being applied",
	ErrExhausted:     "no seed is consistent with every observation",
	ErrInconsistent:  "the applied enchantments differ from the predicted ones",
	ErrUnenchantable: "the item cannot be enchanted at a table",
}

// ErrorTag returns the dump tag of the sentinel err wraps, or "".
func ErrorTag(err error) string {
	for _, s := range []error{ErrSeedMismatch, ErrExhausted, ErrInconsistent, ErrUnenchantable} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return ""
}

func (e *Engine) process(ctx context.Context, obs *observation.Observation) {
	e.log.Debug().Stringer("obs", obs).Msg("observation")
	if obs.IsFinalPick() {
		e.finalPick(obs)
		return
	}

	e.seq = append(e.seq, obs)
	if !obs.HasOutcomes() {
		e.pub.Store(e.pub.Load().WithObservation(obs))
		return
	}

	if prev := e.previousWithOutcomes(); prev != nil &&
		prev.TruncatedSeed != obs.TruncatedSeed && prev.Power == obs.Power {
		e.fail(ErrSeedMismatch, obs, true)
		return
	}

	elig := e.eligibility(obs)
	if elig.Enchantability() <= 0 {
		e.fail(ErrUnenchantable, obs, false)
		return
	}

	if e.set.Len() == 0 {
		if e.cfg.Trust == TrustNever || e.escalated {
			e.scanFull(ctx, obs, elig)
		} else {
			e.scanHinted(ctx, obs, elig)
		}
	} else {
		e.refine(obs, elig, obs.Power != e.lastPower)
	}
	if ctx.Err() != nil {
		return
	}
	e.lastPower = obs.Power

	if e.set.Len() == 0 {
		if e.cfg.Trust == TrustSometimes && !e.escalated {
			e.escalate()
			return
		}
		e.fail(ErrExhausted, obs, true)
		return
	}
	e.publishResting(obs)
}

// previousWithOutcomes is the last enchant-bearing observation before the
// newest one in the sequence log.
func (e *Engine) previousWithOutcomes() *observation.Observation {
	for i := len(e.seq) - 2; i >= 0; i-- {
		if e.seq[i].HasOutcomes() {
			return e.seq[i]
		}
	}
	return nil
}

func (e *Engine) eligibility(obs *observation.Observation) *model.Eligibility {
	lvl := obs.MaxLevel()
	if e.elig == nil || e.eligItem != obs.Item.Name || lvl > e.eligMax {
		e.elig = model.NewEligibility(e.cfg.Catalog, *obs.Item, lvl)
		e.eligItem, e.eligMax = obs.Item.Name, lvl
	}
	return e.elig
}

// escalate drops the hinted result and queues the whole sequence again,
// this time for full scans.
func (e *Engine) escalate() {
	e.log.Warn().Int("observations", len(e.seq)).Msg("hinted scan exhausted, rescanning the full seed space")
	e.escalated = true
	e.set.Reset()
	e.tally.Reset()
	e.replay = append(slices.Clone(e.seq), e.replay...)
	e.seq = e.seq[:0]
	e.lastPower = observation.UnsetPower
}

func (e *Engine) finalPick(obs *observation.Observation) {
	if !e.consistent(obs) {
		e.seq = append(e.seq, obs)
		e.fail(ErrInconsistent, obs, false)
		return
	}
	e.reset()
	e.setPhase(PhaseIdle)
	e.pub.Store(state.Default)
}

// consistent checks a final pick against the lone surviving seed. With
// more or fewer candidates there is nothing to check.
func (e *Engine) consistent(obs *observation.Observation) bool {
	slot := int(obs.TruncatedSeed)
	if slot > 2 {
		return false
	}
	if e.set.Len() != 1 || obs.Item == nil {
		return true
	}
	elig := model.NewEligibility(e.cfg.Catalog, *obs.Item, obs.MaxLevel())
	predicted := model.HiddenList(e.set.Seeds()[0], slot, obs.Levels[slot], elig)
	applied := obs.Item.Outcomes
	if len(predicted) != len(applied) {
		return false
	}
	for _, p := range predicted {
		if !slices.Contains(applied, p) {
			return false
		}
	}
	return true
}

func (e *Engine) reset() {
	e.seq = e.seq[:0]
	e.replay = nil
	e.set.Reset()
	e.tally.Reset()
	e.escalated = false
	e.lastPower = observation.UnsetPower
}

// fail publishes an error state, writes the diagnostic dump and resets the
// sequence. With keep, obs starts the next sequence's log. The engine is
// idle again once fail returns; the error stays visible in the State.
func (e *Engine) fail(cause error, obs *observation.Observation, keep bool) {
	err := fmt.Errorf("%w: %s", cause, errDescriptions[cause])
	e.setPhase(PhaseError)
	e.dump(err)
	e.log.Error().Err(err).Int("observations", len(e.seq)).Msg("seed deduction failed")
	e.pub.Store(&state.State{Status: state.ErrorStatus, Observation: obs, Progress: -1, Err: err})
	e.reset()
	if keep {
		e.seq = append(e.seq, obs)
	}
	e.setPhase(PhaseIdle)
}

func (e *Engine) dump(err error) {
	w := e.cfg.Diagnostics
	fmt.Fprintf(w, "enchrev: seed deduction failed: %v\n", err)
	fmt.Fprintf(w, "observations in this sequence (%d):\n", len(e.seq))
	for _, o := range e.seq {
		fmt.Fprintf(w, "  %s\n", o.Format(e.cfg.Catalog))
	}
}

func (e *Engine) publishResting(obs *observation.Observation) {
	seeds := e.set.Seeds()
	st := &state.State{
		Status:      state.RestingStatus(seeds),
		Observation: obs,
		Candidates:  len(seeds),
		Progress:    -1,
	}
	for slot := 0; slot < 3; slot++ {
		if obs.Levels[slot] == 0 {
			continue
		}
		for _, c := range e.tally.Sorted(slot, obs.Outcome(slot)) {
			st.Names[slot] = append(st.Names[slot], e.cfg.Catalog.Name(c.Outcome))
			st.Counts[slot] = append(st.Counts[slot], c.N)
		}
	}
	if len(seeds) == 1 {
		st.Seed = seeds[0]
	}
	e.setPhase(PhaseIdle)
	e.pub.Store(st)
	e.log.Info().Int("candidates", len(seeds)).Str("status", st.Status).Msg("narrowed")
}

func (e *Engine) progress(obs *observation.Observation, percent int) {
	e.pub.Store(&state.State{
		Status:      state.CalculatingStatus(percent),
		Observation: obs,
		Candidates:  e.set.Len(),
		Progress:    percent,
	})
	if e.cfg.Progress != nil {
		e.cfg.Progress(percent)
	}
}
