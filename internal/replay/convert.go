// internal/replay/convert.go
package replay

import (
	"fmt"
	"time"

	"enchrev/internal/model"
	"enchrev/internal/observation"
	"enchrev/internal/vanilla"
	"enchrev/pkg/api"
)

func outcomesFromV1(in []api.OutcomeV1) []model.Outcome {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Outcome, len(in))
	for i, o := range in {
		out[i] = model.Outcome{ID: o.ID, Level: o.Level}
	}
	return out
}

func outcomesToV1(in []model.Outcome) []api.OutcomeV1 {
	if len(in) == 0 {
		return nil
	}
	out := make([]api.OutcomeV1, len(in))
	for i, o := range in {
		out[i] = api.OutcomeV1{ID: o.ID, Level: o.Level}
	}
	return out
}

func itemFromV1(v api.ObservationV1) (*model.Item, error) {
	if v.Item == "" {
		return nil, nil
	}
	return vanilla.NewItem(v.Item, outcomesFromV1(v.Applied)...)
}

// ObservationFromV1 validates v and builds the engine's form.
func ObservationFromV1(v api.ObservationV1) (*observation.Observation, error) {
	item, err := itemFromV1(v)
	if err != nil {
		return nil, err
	}
	o := observation.New()
	o.TruncatedSeed = v.TruncatedSeed
	o.Power = v.Power
	o.Levels = v.Levels
	for i, oc := range v.Outcomes {
		o.OutcomeIDs[i] = oc.ID
		o.OutcomeLevels[i] = oc.Level
	}
	o.Item = item
	o.Tick = v.Tick
	if v.Time != "" {
		ts, err := time.Parse(time.RFC3339Nano, v.Time)
		if err != nil {
			return nil, fmt.Errorf("time: %w", err)
		}
		o.Timestamp = ts
	}
	for i, l := range o.Levels {
		if l < 0 {
			return nil, fmt.Errorf("levels[%d] = %d is negative", i, l)
		}
	}
	return o, nil
}

// ToV1 is the inverse of ObservationFromV1.
func ToV1(o *observation.Observation) api.ObservationV1 {
	v := api.ObservationV1{
		TruncatedSeed: o.TruncatedSeed,
		Power:         o.Power,
		Levels:        o.Levels,
		Tick:          o.Tick,
	}
	for i := range v.Outcomes {
		v.Outcomes[i] = api.OutcomeV1{ID: o.OutcomeIDs[i], Level: o.OutcomeLevels[i]}
	}
	if o.Item != nil {
		v.Item = o.Item.Name
		v.Applied = outcomesToV1(o.Item.Outcomes)
	}
	if !o.Timestamp.IsZero() {
		v.Time = o.Timestamp.Format(time.RFC3339Nano)
	}
	return v
}

// FinalPickToV1 splits a final pick into the begin and finish log lines the
// host emits around an enchant.
func FinalPickToV1(pick *observation.Observation) (begin, finish api.ObservationV1) {
	begin = ToV1(pick)
	begin.Kind = api.KindBegin
	begin.Item, begin.Applied = "", nil
	finish = api.ObservationV1{Kind: api.KindFinish}
	if pick.Item != nil {
		finish.Item = pick.Item.Name
		finish.Applied = outcomesToV1(pick.Item.Outcomes)
	}
	return begin, finish
}
