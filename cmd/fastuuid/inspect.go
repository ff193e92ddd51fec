package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/fastuuid"
)

type report struct {
	UUID          string `json:"uuid" yaml:"uuid"`
	Version       int    `json:"version" yaml:"version"`
	Variant       string `json:"variant" yaml:"variant"`
	Hex           string `json:"hex" yaml:"hex"`
	Base64        string `json:"base64" yaml:"base64"`
	Time          string `json:"time,omitempty" yaml:"time,omitempty"`
	ClockSequence *int   `json:"clockSequence,omitempty" yaml:"clockSequence,omitempty"`
	Node          string `json:"node,omitempty" yaml:"node,omitempty"`
}

func newReport(id fastuuid.UUID) report {
	r := report{
		UUID:    id.String(),
		Version: int(id.Version()),
		Variant: id.Variant().String(),
		Hex:     id.Hex(),
		Base64:  id.EncodeToBase64Std(),
	}
	if id.Version() == fastuuid.VersionTimeBased {
		seq := id.ClockSequence()
		r.Time = id.Time().Format(time.RFC3339Nano)
		r.ClockSequence = &seq
		r.Node = fmt.Sprintf("%x", id.NodeID())
	}
	return r
}

func runInspect(cfg *config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", cfg.Output, "output format: yaml or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: inspect needs at least one UUID", errUsage)
	}

	reports := make([]report, 0, fs.NArg())
	for _, arg := range fs.Args() {
		id, err := fastuuid.Parse(arg)
		if err != nil {
			return err
		}
		reports = append(reports, newReport(id))
	}

	switch *output {
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	default:
		return fmt.Errorf("%w: unknown output %q", errUsage, *output)
	}
}
