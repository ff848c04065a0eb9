// internal/writers/state.go
package writers

import (
	"fmt"
	"io"
	"strings"

	"enchrev/internal/engine"
	"enchrev/internal/replay"
	"enchrev/internal/state"
	"enchrev/pkg/api"
)

// StateToV1 converts a snapshot to its wire form.
func StateToV1(st *state.State) api.StateV1 {
	v := api.StateV1{
		Status:     strings.TrimPrefix(st.Status, state.ErrorPrefix),
		Error:      engine.ErrorTag(st.Err),
		Candidates: st.Candidates,
		Progress:   st.Progress,
	}
	if st.Candidates == 1 {
		v.Seed = fmt.Sprintf("0x%08X", st.Seed)
	}
	for slot := range st.Names {
		v.Slots[slot] = make([]api.TallyV1, 0, len(st.Names[slot]))
		for i, name := range st.Names[slot] {
			v.Slots[slot] = append(v.Slots[slot], api.TallyV1{Name: name, Count: st.Counts[slot][i]})
		}
	}
	if st.Observation != nil {
		o := replay.ToV1(st.Observation)
		v.Observation = &o
	}
	return v
}

// WriteStateText prints the status line followed by each slot's tally as
// "count/total name". Empty slots are skipped.
func WriteStateText(w io.Writer, st *state.State) error {
	if _, err := fmt.Fprintln(w, strings.TrimPrefix(st.Status, state.ErrorPrefix)); err != nil {
		return err
	}
	if st.Err != nil {
		if _, err := fmt.Fprintf(w, "error: %v\n", st.Err); err != nil {
			return err
		}
	}
	for slot := range st.Names {
		names := st.Names[slot]
		if len(names) == 0 {
			continue
		}
		total := st.Counts[slot][0]
		if _, err := fmt.Fprintf(w, "slot %d (level %d):\n", slot+1, levelOf(st, slot)); err != nil {
			return err
		}
		for i, name := range names {
			if _, err := fmt.Fprintf(w, "  %d/%d\t%s\n", st.Counts[slot][i], total, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func levelOf(st *state.State, slot int) int32 {
	if st.Observation == nil {
		return 0
	}
	return st.Observation.Levels[slot]
}
