package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/Lzww0608/fastuuid"
)

const (
	benchName      = "example.com"
	benchBatchSize = 100
)

// sink keeps generated values observable so calls are not optimized away.
var sink string

type benchCase struct {
	name     string
	fast     func() error
	baseline func() error
}

func benchCases() []benchCase {
	return []benchCase{
		{
			name: "uuid1",
			fast: func() (err error) {
				sink, err = fastuuid.UUID1()
				return err
			},
			baseline: func() error {
				id, err := uuid.NewUUID()
				sink = id.String()
				return err
			},
		},
		{
			name: "uuid3",
			fast: func() (err error) {
				sink, err = fastuuid.UUID3(fastuuid.NamespaceDNSString, benchName)
				return err
			},
			baseline: func() error {
				sink = uuid.NewMD5(uuid.NameSpaceDNS, []byte(benchName)).String()
				return nil
			},
		},
		{
			name: "uuid4",
			fast: func() error {
				sink = fastuuid.UUID4()
				return nil
			},
			baseline: func() error {
				sink = uuid.NewString()
				return nil
			},
		},
		{
			name: "uuid5",
			fast: func() (err error) {
				sink, err = fastuuid.UUID5(fastuuid.NamespaceDNSString, benchName)
				return err
			},
			baseline: func() error {
				sink = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(benchName)).String()
				return nil
			},
		},
		{
			name: fmt.Sprintf("uuid4_batch(%d)", benchBatchSize),
			fast: func() error {
				sink = fastuuid.UUID4Batch(benchBatchSize)[benchBatchSize-1]
				return nil
			},
			baseline: func() error {
				out := make([]string, benchBatchSize)
				for i := range out {
					out[i] = uuid.NewString()
				}
				sink = out[benchBatchSize-1]
				return nil
			},
		},
		{
			name: "parse",
			fast: func() error {
				id, err := fastuuid.Parse(fastuuid.NamespaceURLString)
				sink = id.Hex()
				return err
			},
			baseline: func() error {
				id, err := uuid.Parse(fastuuid.NamespaceURLString)
				sink = id.String()
				return err
			},
		},
	}
}

// stats summarizes the trials of one implementation.
type stats struct {
	mean   float64 // seconds per trial
	stddev float64
	ops    float64 // operations per second at the mean
}

func runBench(cfg *config, log *slog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	iterations := fs.Int("iterations", cfg.BenchIterations, "calls per trial")
	trials := fs.Int("trials", cfg.BenchTrials, "trials per implementation")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *iterations <= 0 || *trials <= 0 {
		return fmt.Errorf("%w: iterations and trials must be positive", errUsage)
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "operation\tfastuuid ops/s\t± s\tgoogle/uuid ops/s\t± s\tspeedup\t")
	for _, c := range benchCases() {
		fast, err := measure(c.fast, *iterations, *trials, log.With(slog.String("operation", c.name), slog.String("impl", "fastuuid")))
		if err != nil {
			return fmt.Errorf("bench %s: %w", c.name, err)
		}
		base, err := measure(c.baseline, *iterations, *trials, log.With(slog.String("operation", c.name), slog.String("impl", "google/uuid")))
		if err != nil {
			return fmt.Errorf("bench %s baseline: %w", c.name, err)
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%.4f\t%.0f\t%.4f\t%.2fx\t\n",
			c.name, fast.ops, fast.stddev, base.ops, base.stddev, fast.ops/base.ops)
	}
	return tw.Flush()
}

func measure(fn func() error, iterations, trials int, log *slog.Logger) (stats, error) {
	times := make([]float64, 0, trials)
	for trial := 1; trial <= trials; trial++ {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			if err := fn(); err != nil {
				return stats{}, err
			}
		}
		elapsed := time.Since(start)
		log.Debug("trial finished",
			slog.Int("trial", trial),
			slog.Duration("elapsed", elapsed),
			slog.Float64("opsPerSec", float64(iterations)/elapsed.Seconds()),
		)
		times = append(times, elapsed.Seconds())
	}
	s := summarize(times)
	s.ops = float64(iterations) / s.mean
	return s, nil
}

// summarize returns the mean and sample standard deviation of times.
func summarize(times []float64) stats {
	var s stats
	if len(times) == 0 {
		return s
	}
	for _, t := range times {
		s.mean += t
	}
	s.mean /= float64(len(times))
	if len(times) > 1 {
		var sq float64
		for _, t := range times {
			sq += (t - s.mean) * (t - s.mean)
		}
		s.stddev = math.Sqrt(sq / float64(len(times)-1))
	}
	return s
}
