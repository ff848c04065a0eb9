// pkg/api/state_v1.go
package api

// TallyV1 is one row of a slot's outcome tally.
type TallyV1 struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StateV1 is the stable JSON schema for a published engine state.
type StateV1 struct {
	Status      string         `json:"status"`
	Error       string         `json:"error,omitempty"` // seedmismatch | exhausted | inconsistent | unenchantable
	Seed        string         `json:"seed,omitempty"`  // "0x%08X" once a single candidate remains
	Candidates  int            `json:"candidates"`
	Progress    int            `json:"progress"`
	Slots       [3][]TallyV1   `json:"slots"`
	Observation *ObservationV1 `json:"observation,omitempty"`
}
