// pkg/api/observations_v1.go
package api

// Event kinds in an observation log.
const (
	KindObserve = "observe" // default when empty
	KindBegin   = "begin"   // final pick clicked; item not yet known
	KindFinish  = "finish"  // finished item for the pending begin
)

// OutcomeV1 is one enchantment at one level. ID -1 means none.
type OutcomeV1 struct {
	ID    int32 `json:"id"`
	Level int32 `json:"level"`
}

// ObservationV1 is the stable JSONL schema for one observation-log line.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ObservationV1 struct {
	Kind          string       `json:"kind,omitempty"`
	TruncatedSeed uint16       `json:"truncated_seed"` // chosen slot for final picks
	Power         int32        `json:"power"`          // -1 = final pick
	Levels        [3]int32     `json:"levels"`
	Outcomes      [3]OutcomeV1 `json:"outcomes"`
	Item          string       `json:"item,omitempty"`    // registry key
	Applied       []OutcomeV1  `json:"applied,omitempty"` // enchantments on a finished item
	Time          string       `json:"time,omitempty"`    // RFC 3339, diagnostic only
	Tick          int64        `json:"tick,omitempty"`
}
