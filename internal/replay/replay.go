// internal/replay/replay.go
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"enchrev/internal/model"
	"enchrev/internal/observation"
	"enchrev/pkg/api"
)

// Event is one decoded log line.
type Event struct {
	Kind string
	Obs  *observation.Observation // observe, begin
	Item *model.Item              // finish
}

// Sink is what a replay feeds; *engine.Engine satisfies it.
type Sink interface {
	AddObservation(obs *observation.Observation)
	ReportBegin(obs *observation.Observation)
	ReportFinish(item *model.Item)
}

// Reader decodes an observation log (one api.ObservationV1 per line).
type Reader struct {
	dec  sonic.Decoder
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{dec: sonic.ConfigStd.NewDecoder(r)}
}

// Next returns the next event, or io.EOF after the last one.
func (r *Reader) Next() (Event, error) {
	var v api.ObservationV1
	if err := r.dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		return Event{}, fmt.Errorf("record %d: %w", r.line+1, err)
	}
	r.line++
	ev, err := eventFromV1(v)
	if err != nil {
		return Event{}, fmt.Errorf("record %d: %w", r.line, err)
	}
	return ev, nil
}

func eventFromV1(v api.ObservationV1) (Event, error) {
	switch v.Kind {
	case "", api.KindObserve:
		o, err := ObservationFromV1(v)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: api.KindObserve, Obs: o}, nil
	case api.KindBegin:
		o, err := ObservationFromV1(v)
		if err != nil {
			return Event{}, err
		}
		o.Power = observation.ResetPower
		return Event{Kind: api.KindBegin, Obs: o}, nil
	case api.KindFinish:
		item, err := itemFromV1(v)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: api.KindFinish, Item: item}, nil
	}
	return Event{}, fmt.Errorf("unknown kind %q", v.Kind)
}

// Apply hands ev to s.
func Apply(s Sink, ev Event) {
	switch ev.Kind {
	case api.KindBegin:
		s.ReportBegin(ev.Obs)
	case api.KindFinish:
		s.ReportFinish(ev.Item)
	default:
		s.AddObservation(ev.Obs)
	}
}

// Run feeds every event of r into s, calling each (if set) after every
// event. It returns the number of events applied.
func Run(ctx context.Context, r io.Reader, s Sink, each func(Event) error) (int, error) {
	rd := NewReader(r)
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		ev, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		Apply(s, ev)
		n++
		if each != nil {
			if err := each(ev); err != nil {
				return n, err
			}
		}
	}
}
