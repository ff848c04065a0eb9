// Package engine deduces the hidden enchanting seed from a stream of table
// observations. It never imports app, writers, cli or replay; keep it
// domain-only.
//
// One supervisor goroutine owns the candidate set and processes
// observations strictly in order. Producers only touch the queue; readers
// only touch the published State.
//
// External outputs must not depend on the internal shape here. Use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
