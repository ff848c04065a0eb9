// internal/pipeline/worker.go
package pipeline

// Worker is the minimal capability the pool needs. Each goroutine owns one
// Worker, so implementations keep their scratch state unsynchronised.
type Worker interface {
	// Scan tests seeds [lo, lo+n) and accumulates matches locally.
	Scan(lo, n uint32)
	// Flush merges local results into shared state. The pool calls it while
	// holding the claim lock, so shared state needs no lock of its own.
	Flush()
}
