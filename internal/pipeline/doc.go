// Package pipeline splits the 32-bit seed space into fixed batches and hands
// them to a pool of workers.
//
// The only contract to implement is Worker (Scan + Flush). This keeps the
// pool independent of what a "match" is, and testable with fakes.
package pipeline
