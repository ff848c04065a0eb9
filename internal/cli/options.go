// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"enchrev/internal/cliutil"
	"enchrev/internal/engine"
)

// Options holds the flags and arguments of enchrev.
type Options struct {
	// Input
	Logs       []string // observation logs; "-" is stdin
	ConfigFile string

	// Deduction
	SeedHint string // always | sometimes | never; "" defers to the config file
	Threads  int    // 0 defers to the config file

	// Output
	Output    string // text | json
	Trace     bool   // JSONL state after every event
	Verbose   bool
	LogFormat string // console | json

	Version bool
}

// NewEnchrevFlagSet is NewFlagSet with enchrev's usage text.
func NewEnchrevFlagSet() *flag.FlagSet {
	return NewFlagSet("enchrev", "deduce an enchanting table's hidden seed from an observation log", "[flags] [log.jsonl ...]")
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and log paths may be interleaved; globs are expanded.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ConfigFile, "config", "", "JSON config file (useSeedHint, verboseDebug, threads)")
	fs.StringVar(&opt.SeedHint, "seed-hint", "", "trust the displayed seed hint: always | sometimes | never [sometimes]")
	fs.IntVar(&opt.Threads, "threads", 0, "full-scan worker threads (0 = config or 4) [0]")
	fs.StringVar(&opt.Output, "output", "text", "final state format: text | json [text]")
	fs.BoolVar(&opt.Trace, "trace", false, "write the state after every event as JSONL before the final state [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging [false]")
	fs.StringVar(&opt.LogFormat, "log-format", "console", "stderr log format: console | json [console]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)
	logs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	if len(logs) == 0 {
		logs = []string{"-"}
	}
	opt.Logs = logs

	// Validation
	if opt.SeedHint != "" {
		if _, err := engine.ParseTrust(opt.SeedHint); err != nil {
			return opt, fmt.Errorf("--seed-hint: %w", err)
		}
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.LogFormat != "console" && opt.LogFormat != "json" {
		return opt, fmt.Errorf("invalid --log-format %q", opt.LogFormat)
	}
	stdin := 0
	for _, l := range opt.Logs {
		if l == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return opt, errors.New("stdin ('-') may be given only once")
	}
	return opt, nil
}
