// internal/engine/scan.go
package engine

import (
	"context"
	"time"

	"enchrev/internal/candidates"
	"enchrev/internal/model"
	"enchrev/internal/observation"
	"enchrev/internal/pipeline"
)

// hintedBatch is the number of high halves between progress reports.
const hintedBatch = 32

// matches tests seed's clues for every non-empty slot. On success the
// roller's lists hold the hidden list per slot.
func matches(ro *model.Roller, seed uint32, obs *observation.Observation) bool {
	for slot := 0; slot < 3; slot++ {
		lvl := obs.Levels[slot]
		if lvl == 0 {
			continue
		}
		if !ro.Outcome(seed, slot, lvl, obs.Outcome(slot)) {
			return false
		}
	}
	return true
}

func addLists(t *candidates.Tally, ro *model.Roller, obs *observation.Observation) {
	for slot := 0; slot < 3; slot++ {
		if obs.Levels[slot] != 0 {
			t.Add(slot, ro.List(slot))
		}
	}
}

// scanHinted walks the 2^20 seeds whose low 16 bits agree with the hint up
// to the masked low nibble.
func (e *Engine) scanHinted(ctx context.Context, obs *observation.Observation, elig *model.Eligibility) {
	e.setPhase(PhaseScanningHinted)
	start := time.Now()
	e.tally.Reset()
	ro := model.NewRoller(elig)

	first := uint32(obs.TruncatedSeed) &^ 0xF
	i := first
	for {
		e.progress(obs, int((uint64(i&0xFFFF0000)*100+1<<31)>>32))
		limit := i + hintedBatch<<16
		for ; i != limit; i += 1 << 16 {
			for j := uint32(0); j < 16; j++ {
				seed := i | j
				if model.TestLevelsFast(seed, obs.Power, obs.Levels) && matches(ro, seed, obs) {
					e.set.Add(seed)
					addLists(&e.tally, ro, obs)
				}
			}
		}
		if i == first || ctx.Err() != nil {
			break
		}
	}
	e.log.Info().
		Int("candidates", e.set.Len()).
		Dur("took", time.Since(start)).
		Msg("hinted scan finished")
}

// scanWorker is one goroutine's share of a full scan.
type scanWorker struct {
	e     *Engine
	obs   *observation.Observation
	ro    *model.Roller
	found []uint32
	tally candidates.Tally
}

var _ pipeline.Worker = (*scanWorker)(nil)

func (w *scanWorker) Scan(lo, n uint32) {
	for k := uint32(0); k < n; k++ {
		seed := lo + k
		if model.TestLevelsFast(seed, w.obs.Power, w.obs.Levels) && matches(w.ro, seed, w.obs) {
			w.found = append(w.found, seed)
			addLists(&w.tally, w.ro, w.obs)
		}
	}
}

// Flush runs under the pool's claim lock.
func (w *scanWorker) Flush() {
	w.e.set.Append(w.found)
	w.found = w.found[:0]
	w.e.tally.Merge(&w.tally)
	w.tally.Reset()
}

func (e *Engine) scanFull(ctx context.Context, obs *observation.Observation, elig *model.Eligibility) {
	e.setPhase(PhaseScanningFull)
	start := time.Now()
	e.tally.Reset()
	e.log.Info().Int("threads", e.cfg.Threads).Msg("full scan starting")

	err := pipeline.ScanAll(ctx, pipeline.Config{Threads: e.cfg.Threads},
		func() pipeline.Worker {
			return &scanWorker{e: e, obs: obs, ro: model.NewRoller(elig)}
		},
		func(p int) { e.progress(obs, p) })
	if err != nil {
		e.log.Debug().Err(err).Msg("full scan interrupted")
		return
	}
	e.set.Sort()
	e.log.Info().
		Int("candidates", e.set.Len()).
		Dur("took", time.Since(start)).
		Msg("full scan finished")
}

// refine re-tests the current candidates. Levels are only re-checked when
// the power changed since the last narrowing.
func (e *Engine) refine(obs *observation.Observation, elig *model.Eligibility, levels bool) {
	e.setPhase(PhaseRefining)
	before := e.set.Len()
	e.tally.Reset()
	ro := model.NewRoller(elig)
	e.set.Filter(func(seed uint32) bool {
		if levels && !model.TestLevelsFast(seed, obs.Power, obs.Levels) {
			return false
		}
		if !matches(ro, seed, obs) {
			return false
		}
		addLists(&e.tally, ro, obs)
		return true
	})
	e.log.Debug().Int("before", before).Int("after", e.set.Len()).Bool("levels", levels).Msg("refined")
}
