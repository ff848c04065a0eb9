package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)
	log.Debug().Msg("hidden")
	log.Info().Int("candidates", 12).Msg("narrowed")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug leaked without verbose: %s", out)
	}
	if !strings.Contains(out, `"candidates":12`) || !strings.Contains(out, `"message":"narrowed"`) {
		t.Fatalf("json line missing fields: %s", out)
	}

	buf.Reset()
	console := New(&buf, true, true)
	console.Debug().Msg("shown")
	if !strings.Contains(buf.String(), "shown") || strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("console debug output: %q", buf.String())
	}
}
