// Command fastuuid generates, inspects and benchmarks RFC 4122 UUIDs.
//
//	fastuuid gen [-v 1|3|4|5] [-ns TOKEN] [-name NAME] [-n COUNT] [-format canonical|hex|base64]
//	fastuuid inspect [-o yaml|json] UUID...
//	fastuuid bench [-iterations N] [-trials T]
//
// Defaults are read from FASTUUID_* environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const usage = `usage: fastuuid <command> [flags]

commands:
  gen      generate UUIDs
  inspect  decode UUIDs into their fields
  bench    compare generator throughput with github.com/google/uuid
`

// errUsage marks errors caused by bad invocation.
var errUsage = errors.New("usage error")

// parseFlags parses args into fs, reporting bad flags as usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", errUsage, err)
}

func main() {
	os.Exit(run(os.Args[1:], nil, os.Stdout, os.Stderr))
}

func run(args []string, environment map[string]string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(environment)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	command, rest := args[0], args[1:]
	switch command {
	case "gen":
		err = runGen(cfg, rest, stdout, stderr)
	case "inspect":
		err = runInspect(cfg, rest, stdout, stderr)
	case "bench":
		err = runBench(cfg, log, rest, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, command)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		log.Error("invalid invocation", slog.String("command", command), slog.Any("error", err))
		fmt.Fprint(stderr, usage)
		return 2
	default:
		log.Error("command failed", slog.String("command", command), slog.Any("error", err))
		return 1
	}
}
