// pkg/api/prediction_v1.go
package api

// PredictionV1 is what a table with a known seed shows and hides.
type PredictionV1 struct {
	Seed        string         `json:"seed"` // "0x%08X"
	Power       int32          `json:"power"`
	Item        string         `json:"item"`
	Observation ObservationV1  `json:"observation"`
	Hidden      [3][]OutcomeV1 `json:"hidden"` // full list per slot; [] for empty slots
}
