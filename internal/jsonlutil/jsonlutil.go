// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"io"
	"sync"

	"github.com/bytedance/sonic"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
// The encoder is tied to an io.Writer, so we (re)create it per goroutine.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a JSONL encoder goroutine for values of type T.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// Close the returned channel, then read exactly one value from the error
// channel.
func Start[T any](out io.Writer, bufSize int, encode func(sonic.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := sonic.ConfigStd.NewEncoder(bw)

		var err error
		for v := range in {
			if err != nil {
				continue // drain so senders never block
			}
			if e := encode(enc, v); e != nil && !isBroken(e) {
				err = e
			}
		}
		if err == nil {
			if e := bw.Flush(); e != nil && !isBroken(e) {
				err = e
			}
		}
		done <- err
	}()

	return in, done
}
