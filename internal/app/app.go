// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"

	"enchrev/internal/cli"
	"enchrev/internal/config"
	"enchrev/internal/engine"
	"enchrev/internal/jsonlutil"
	"enchrev/internal/jsonutil"
	"enchrev/internal/logging"
	"enchrev/internal/replay"
	"enchrev/internal/state"
	"enchrev/internal/version"
	"enchrev/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitFailed    = 4 // the final state is an error state
	ExitCancelled = 130
)

// flushed flushes outw and turns the result into an exit code. Broken pipes
// are not errors.
func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO
	}
	return code
}

// parseFailed handles help, usage errors and --version. ok is false when
// the caller should return code.
func parseFailed(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, name string, err error, showVersion bool) (code int, ok bool) {
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushed(outw, stderr, ExitOK), false
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, ExitUsage), false
	}
	if showVersion {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushed(outw, stderr, ExitOK), false
	}
	return 0, true
}

// RunContext is enchrev: replay observation logs through the engine and
// print the final state.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewEnchrevFlagSet()
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fs, argv)
	if code, ok := parseFailed(fs, outw, stderr, "enchrev", err, opts.Version); !ok {
		return code
	}

	var file config.File
	if opts.ConfigFile != "" {
		if file, err = config.Load(opts.ConfigFile); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitUsage
		}
	}
	hint := opts.SeedHint
	if hint == "" {
		hint = file.UseSeedHint
	}
	trust, err := engine.ParseTrust(hint)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	threads := opts.Threads
	if threads == 0 {
		threads = file.Threads
	}
	log := logging.New(stderr, opts.Verbose || file.VerboseDebug, opts.LogFormat == "console")

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	eng := engine.New(engine.Config{
		Trust:       trust,
		Threads:     threads,
		Logger:      log,
		Diagnostics: stderr,
	})
	if err := eng.Start(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	defer eng.Close()

	var each func(replay.Event) error
	var traceCh chan<- *state.State
	var traceErr <-chan error
	if opts.Trace {
		traceCh, traceErr = jsonlutil.Start(outw, 64, func(enc sonic.Encoder, st *state.State) error {
			return enc.Encode(writers.StateToV1(st))
		}, writers.IsBrokenPipe)
		each = func(replay.Event) error {
			if err := eng.Sync(ctx); err != nil {
				return err
			}
			select {
			case traceCh <- eng.State():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	total, rerr := replayAll(ctx, opts.Logs, eng, each)
	if rerr == nil {
		rerr = eng.Sync(ctx)
	}
	if traceCh != nil {
		close(traceCh)
		if werr := <-traceErr; werr != nil {
			_, _ = fmt.Fprintln(stderr, werr)
			return ExitIO
		}
	}
	if rerr != nil {
		if errors.Is(rerr, context.Canceled) || parent.Err() != nil {
			return ExitCancelled
		}
		_, _ = fmt.Fprintln(stderr, rerr)
		var pe *os.PathError
		if errors.As(rerr, &pe) {
			return ExitIO
		}
		return ExitUsage
	}
	log.Debug().Int("events", total).Msg("replay finished")

	st := eng.State()
	if opts.Output == "json" {
		err = jsonutil.EncodePretty(outw, writers.StateToV1(st))
	} else {
		err = writers.WriteStateText(outw, st)
	}
	if writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	code := ExitOK
	if st.IsError() {
		code = ExitFailed
	}
	return flushed(outw, stderr, code)
}

// replayAll feeds each log in order. "-" is stdin.
func replayAll(ctx context.Context, logs []string, sink replay.Sink, each func(replay.Event) error) (int, error) {
	total := 0
	for _, name := range logs {
		n, err := replayOne(ctx, name, sink, each)
		total += n
		if err != nil {
			if name == "-" {
				name = "stdin"
			}
			return total, fmt.Errorf("%s: %w", name, err)
		}
	}
	return total, nil
}

func replayOne(ctx context.Context, name string, sink replay.Sink, each func(replay.Event) error) (int, error) {
	if name == "-" {
		return replay.Run(ctx, os.Stdin, sink, each)
	}
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return replay.Run(ctx, bufio.NewReader(f), sink, each)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
