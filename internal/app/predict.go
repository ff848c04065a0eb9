// internal/app/predict.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"

	"enchrev/internal/cli"
	"enchrev/internal/jsonlutil"
	"enchrev/internal/jsonutil"
	"enchrev/internal/model"
	"enchrev/internal/replay"
	"enchrev/internal/table"
	"enchrev/internal/vanilla"
	"enchrev/internal/writers"
	"enchrev/pkg/api"
)

// RunPredictContext is enchrev-predict: print what a table with a known
// seed shows, or the log lines the host would record for it.
func RunPredictContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewPredictFlagSet()
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, ExitOK)
	}

	opts, err := cli.ParsePredictArgs(fs, argv)
	if code, ok := parseFailed(fs, outw, stderr, "enchrev-predict", err, opts.Version); !ok {
		return code
	}
	item, err := vanilla.NewItem(opts.Item)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	cat := vanilla.Catalog{}
	p := table.Predict(cat, opts.Seed, int32(opts.Power), item)

	switch opts.Output {
	case "json":
		err = jsonutil.EncodePretty(outw, predictionToV1(p))
	case "jsonl":
		err = writeLogLines(outw, p, opts.Pick)
	default:
		err = writePredictionText(outw, cat, p)
	}
	if writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return flushed(outw, stderr, ExitOK)
}

func predictionToV1(p table.Prediction) api.PredictionV1 {
	v := api.PredictionV1{
		Seed:        fmt.Sprintf("0x%08X", p.Seed),
		Power:       p.Observation.Power,
		Item:        p.Observation.Item.Name,
		Observation: replay.ToV1(p.Observation),
	}
	for slot, list := range p.Lists {
		v.Hidden[slot] = make([]api.OutcomeV1, 0, len(list))
		for _, o := range list {
			v.Hidden[slot] = append(v.Hidden[slot], api.OutcomeV1{ID: o.ID, Level: o.Level})
		}
	}
	return v
}

// writeLogLines emits the observation, and with pick ≥ 0 the begin and
// finish lines of enchanting that slot, as a replayable log.
func writeLogLines(out io.Writer, p table.Prediction, pick int) error {
	ch, done := jsonlutil.Start(out, 4, func(enc sonic.Encoder, v api.ObservationV1) error {
		return enc.Encode(v)
	}, writers.IsBrokenPipe)
	ch <- replay.ToV1(p.Observation)
	if pick >= 0 {
		begin, finish := replay.FinalPickToV1(p.Enchant(pick))
		ch <- begin
		ch <- finish
	}
	close(ch)
	return <-done
}

func writePredictionText(w io.Writer, n model.Catalog, p table.Prediction) error {
	o := p.Observation
	if _, err := fmt.Fprintf(w, "seed 0x%08X  power %d  item %s  hint 0x%04X\n", p.Seed, o.Power, o.Item.Name, o.TruncatedSeed); err != nil {
		return err
	}
	for slot := 0; slot < 3; slot++ {
		if o.Levels[slot] == 0 {
			if _, err := fmt.Fprintf(w, "slot %d: empty\n", slot+1); err != nil {
				return err
			}
			continue
		}
		clue := "none"
		if c := o.Outcome(slot); !c.IsNone() {
			clue = n.Name(c)
		}
		names := make([]string, len(p.Lists[slot]))
		for i, e := range p.Lists[slot] {
			names[i] = n.Name(e)
		}
		if _, err := fmt.Fprintf(w, "slot %d: level %d  clue %s  applies [%s]\n", slot+1, o.Levels[slot], clue, strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func RunPredict(argv []string, stdout, stderr io.Writer) int {
	return RunPredictContext(context.Background(), argv, stdout, stderr)
}
