// internal/cli/predict.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// PredictOptions holds the flags of enchrev-predict.
type PredictOptions struct {
	Seed   uint32
	Power  int
	Item   string
	Output string // text | json | jsonl
	Pick   int    // slot to enchant, -1 for none

	Version bool
}

// NewPredictFlagSet is NewFlagSet with enchrev-predict's usage text.
func NewPredictFlagSet() *flag.FlagSet {
	return NewFlagSet("enchrev-predict", "show what a table with a known seed displays and hides", "--seed N --item KEY [flags]")
}

// ParsePredictArgs registers and parses the predictor's flags.
func ParsePredictArgs(fs *flag.FlagSet, argv []string) (PredictOptions, error) {
	var opt PredictOptions
	var help bool
	var seed string

	fs.StringVar(&seed, "seed", "", "table seed, decimal or 0x-prefixed hex [*]")
	fs.IntVar(&opt.Power, "power", 15, "bookshelf power [15]")
	fs.StringVar(&opt.Item, "item", "", "item registry key, e.g. diamond_sword [*]")
	fs.StringVar(&opt.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.IntVar(&opt.Pick, "pick", -1, "also emit the final pick for slot 0-2 (jsonl) [-1]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if seed == "" {
		return opt, errors.New("--seed is required")
	}
	v, err := strconv.ParseUint(seed, 0, 32)
	if err != nil {
		return opt, fmt.Errorf("--seed: %w", err)
	}
	opt.Seed = uint32(v)
	if opt.Item == "" {
		return opt, errors.New("--item is required")
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Pick < -1 || opt.Pick > 2 {
		return opt, errors.New("--pick must be 0, 1 or 2")
	}
	if opt.Pick >= 0 && opt.Output != "jsonl" {
		return opt, errors.New("--pick needs --output jsonl")
	}
	return opt, nil
}
