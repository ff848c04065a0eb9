package config

import (
	"os"
	"path/filepath"
	"testing"

	"enchrev/internal/engine"
)

func write(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "enchrev.json")
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoad(t *testing.T) {
	f, err := Load(write(t, `{"useSeedHint":"never","verboseDebug":true,"threads":6}`))
	if err != nil {
		t.Fatal(err)
	}
	if tr, _ := f.Trust(); tr != engine.TrustNever || !f.VerboseDebug || f.Threads != 6 {
		t.Fatalf("got %+v", f)
	}
}

func TestLoadDefaults(t *testing.T) {
	f, err := Load(write(t, `{}`))
	if err != nil {
		t.Fatal(err)
	}
	if tr, _ := f.Trust(); tr != engine.TrustSometimes || f.Threads != 0 {
		t.Fatalf("got %+v", f)
	}
}

func TestLoadRejects(t *testing.T) {
	for _, body := range []string{`{"useSeedHint":"maybe"}`, `{"threads":-1}`, `{"threads":`} {
		if _, err := Load(write(t, body)); err == nil {
			t.Errorf("%s: expected error", body)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
}
