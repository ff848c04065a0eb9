package writers

import (
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) {
		t.Fatal("wrapped EPIPE should count")
	}
	if !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("closed pipe should count")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatal("nil and EOF are not broken pipes")
	}
}
