// internal/engine/engine.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"enchrev/internal/candidates"
	"enchrev/internal/model"
	"enchrev/internal/observation"
	"enchrev/internal/pipeline"
	"enchrev/internal/state"
	"enchrev/internal/vanilla"
)

// Trust controls how far the engine believes the truncated seed hint.
type Trust int

const (
	// TrustSometimes scans the hinted space first and falls back to the
	// full space once per sequence when the hint leads nowhere.
	TrustSometimes Trust = iota
	TrustAlways
	TrustNever
)

func (t Trust) String() string {
	switch t {
	case TrustAlways:
		return "always"
	case TrustNever:
		return "never"
	}
	return "sometimes"
}

// ParseTrust accepts "always", "never" and "sometimes" (any case).
func ParseTrust(s string) (Trust, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return TrustAlways, nil
	case "never":
		return TrustNever, nil
	case "sometimes", "":
		return TrustSometimes, nil
	}
	return TrustSometimes, fmt.Errorf("invalid trust mode %q (want always | never | sometimes)", s)
}

// Phase is what the supervisor is doing right now.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseScanningHinted
	PhaseScanningFull
	PhaseRefining
	PhaseError
)

func (p Phase) String() string {
	return [...]string{"idle", "scanning-hinted", "scanning-full", "refining", "error"}[p]
}

// Config is the engine's explicit configuration.
type Config struct {
	Catalog     model.Catalog     // host data; nil = vanilla.Catalog
	Trust       Trust             // default TrustSometimes
	Threads     int               // full-scan workers; 0 = pipeline.DefaultThreads
	Logger      zerolog.Logger    // zero value logs nothing
	Diagnostics io.Writer         // receives error dumps; nil = discard
	Progress    func(percent int) // optional, called from scan goroutines
}

type queued struct {
	obs     *observation.Observation
	barrier chan struct{}
}

type Engine struct {
	cfg   Config
	log   zerolog.Logger
	pub   *state.Publisher
	phase atomic.Int32

	// Shared with producers.
	mu      sync.Mutex
	queue   []queued
	pending *observation.Observation
	started bool
	wake    chan struct{}
	done    chan struct{}
	cancel  context.CancelFunc

	// Owned by the supervisor goroutine.
	seq       []*observation.Observation // log of the current sequence
	replay    []*observation.Observation // escalation re-processing, ahead of the queue
	set       *candidates.Set
	tally     candidates.Tally
	elig      *model.Eligibility
	eligItem  string
	eligMax   int32
	lastPower int32
	escalated bool
}

// New builds an engine. Call Start before feeding observations.
func New(cfg Config) *Engine {
	if cfg.Catalog == nil {
		cfg.Catalog = vanilla.Catalog{}
	}
	if cfg.Threads < 1 {
		cfg.Threads = pipeline.DefaultThreads
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = io.Discard
	}
	return &Engine{
		cfg:       cfg,
		log:       cfg.Logger.With().Str("component", "engine").Logger(),
		pub:       state.NewPublisher(),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
		set:       candidates.NewSet(),
		lastPower: observation.UnsetPower,
	}
}

// Start launches the supervisor goroutine. It stops when ctx is cancelled
// or Close is called.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return errors.New("engine: already started")
	}
	e.started = true
	ctx, e.cancel = context.WithCancel(ctx)
	go e.run(ctx)
	return nil
}

// Close stops the supervisor and waits for it. An in-flight full scan stops
// at its next batch boundary.
func (e *Engine) Close() error {
	e.mu.Lock()
	cancel, started := e.cancel, e.started
	e.mu.Unlock()
	if !started {
		return nil
	}
	cancel()
	<-e.done
	return nil
}

// AddObservation enqueues obs and returns immediately. obs must not be
// modified afterwards.
func (e *Engine) AddObservation(obs *observation.Observation) {
	if obs == nil {
		return
	}
	e.enqueue(queued{obs: obs})
}

// ReportBegin buffers a final-pick observation until the finished item is
// known. A second begin replaces the first.
func (e *Engine) ReportBegin(obs *observation.Observation) {
	e.mu.Lock()
	e.pending = obs
	e.mu.Unlock()
}

// ReportFinish attaches the enchanted item to the buffered final pick and
// enqueues it. Without a pending begin it does nothing.
func (e *Engine) ReportFinish(item *model.Item) {
	e.mu.Lock()
	p := e.pending
	e.pending = nil
	if p != nil {
		p = p.Clone()
		p.Item = item
		e.queue = append(e.queue, queued{obs: p})
	}
	e.mu.Unlock()
	if p != nil {
		e.signal()
	}
}

// Sync waits until every observation enqueued before the call has been
// processed.
func (e *Engine) Sync(ctx context.Context) error {
	ch := make(chan struct{})
	e.enqueue(queued{barrier: ch})
	select {
	case <-ch:
		return nil
	case <-e.done:
		return errors.New("engine: closed")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the latest snapshot without blocking.
func (e *Engine) State() *state.State { return e.pub.Load() }

func (e *Engine) Phase() Phase { return Phase(e.phase.Load()) }

func (e *Engine) setPhase(p Phase) { e.phase.Store(int32(p)) }

func (e *Engine) enqueue(q queued) {
	e.mu.Lock()
	e.queue = append(e.queue, q)
	e.mu.Unlock()
	e.signal()
}

func (e *Engine) signal() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// next pops replayed observations first, then the queue.
func (e *Engine) next() (queued, bool) {
	if len(e.replay) > 0 {
		obs := e.replay[0]
		e.replay = e.replay[1:]
		return queued{obs: obs}, true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return queued{}, false
	}
	q := e.queue[0]
	e.queue[0] = queued{}
	e.queue = e.queue[1:]
	return q, true
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.done)
	e.log.Debug().Str("trust", e.cfg.Trust.String()).Int("threads", e.cfg.Threads).Msg("supervisor starting")
	defer e.log.Debug().Msg("supervisor exiting")
	for {
		q, ok := e.next()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-e.wake:
				continue
			}
		}
		if q.barrier != nil {
			close(q.barrier)
			continue
		}
		e.process(ctx, q.obs)
		if ctx.Err() != nil {
			return
		}
	}
}
