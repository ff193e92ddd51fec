package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"github.com/Lzww0608/fastuuid"
)

func runGen(cfg *config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	version := fs.Int("v", cfg.Version, "UUID version: 1, 3, 4 or 5")
	namespace := fs.String("ns", cfg.Namespace, "namespace token or UUID for versions 3 and 5")
	name := fs.String("name", "", "name for versions 3 and 5")
	count := fs.Int("n", cfg.Count, "number of UUIDs")
	format := fs.String("format", cfg.Format, "output format: canonical, hex or base64")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if *count < 0 {
		return fmt.Errorf("%w: count must be non-negative, got %d", errUsage, *count)
	}

	encode, err := formatter(*format)
	if err != nil {
		return err
	}
	ids, err := generate(*version, *namespace, *name, *count)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for _, id := range ids {
		fmt.Fprintln(w, encode(id))
	}
	return w.Flush()
}

func formatter(format string) (func(fastuuid.UUID) string, error) {
	switch format {
	case "canonical", "":
		return fastuuid.UUID.String, nil
	case "hex":
		return fastuuid.UUID.Hex, nil
	case "base64":
		return fastuuid.UUID.EncodeToBase64, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", errUsage, format)
	}
}

func generate(version int, namespace, name string, count int) ([]fastuuid.UUID, error) {
	switch version {
	case 4:
		return fastuuid.NewV4Batch(count), nil
	case 1:
		ids := make([]fastuuid.UUID, 0, count)
		for i := 0; i < count; i++ {
			id, err := fastuuid.NewV1()
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		return ids, nil
	case 3, 5:
		newHashed := fastuuid.NewV3
		if version == 5 {
			newHashed = fastuuid.NewV5
		}
		id, err := newHashed(namespace, name)
		if err != nil {
			return nil, err
		}
		ids := make([]fastuuid.UUID, count)
		for i := range ids {
			ids[i] = id
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("%w: unsupported version %d", errUsage, version)
	}
}
