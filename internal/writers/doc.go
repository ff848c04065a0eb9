// Package writers turns engine snapshots into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text summary, JSON, JSONL).
//   - Engine stays domain-only; replay stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
