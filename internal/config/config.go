// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"enchrev/internal/engine"
)

// File is the optional JSON config. Every key is optional; command-line
// flags win over it.
//
//	{"useSeedHint": "sometimes", "verboseDebug": false, "threads": 4}
type File struct {
	UseSeedHint  string `json:"useSeedHint"`
	VerboseDebug bool   `json:"verboseDebug"`
	Threads      int    `json:"threads"`
}

// Load reads and validates a config file.
func Load(path string) (File, error) {
	var f File
	fh, err := os.Open(path)
	if err != nil {
		return f, err
	}
	defer fh.Close()
	if err := sonic.ConfigStd.NewDecoder(fh).Decode(&f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := f.Trust(); err != nil {
		return f, fmt.Errorf("%s: useSeedHint: %w", path, err)
	}
	if f.Threads < 0 {
		return f, fmt.Errorf("%s: threads must be ≥ 0", path)
	}
	return f, nil
}

// Trust is the parsed useSeedHint value.
func (f File) Trust() (engine.Trust, error) { return engine.ParseTrust(f.UseSeedHint) }
