package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"index-schema/internal/config"
)

// write renders v in the configured format; text output is left to the caller.
func (a *app) write(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return enc.Close()
	default:
		return text(w)
	}
}

func (a *app) dumpTo(w io.Writer, v any) {
	if a.dump {
		spew.Fdump(w, v)
	}
}
