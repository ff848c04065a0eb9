// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"enchrev/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet whose usage names the tool,
// its purpose and the version.
func NewFlagSet(name, about, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: %s

Version: %s

Usage: %s %s
`, name, about, version.Version, name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}
