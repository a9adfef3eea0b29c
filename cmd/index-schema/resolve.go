package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"index-schema/internal/mapping"
	"index-schema/internal/resolve"
)

type resolveOutput struct {
	Path        string   `json:"path" yaml:"path"`
	Resolved    bool     `json:"resolved" yaml:"resolved"`
	Column      string   `json:"column,omitempty" yaml:"column,omitempty"`
	Declared    string   `json:"declared,omitempty" yaml:"declared,omitempty"`
	Terminal    string   `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Validator   string   `json:"validator,omitempty" yaml:"validator,omitempty"`
	MultiValued bool     `json:"multi_valued,omitempty" yaml:"multi_valued,omitempty"`
	Prefix      string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Reason      string   `json:"reason,omitempty" yaml:"reason,omitempty"`
	Candidates  []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

func newResolveOutput(res resolve.Result) resolveOutput {
	out := resolveOutput{
		Path:     res.Path.String(),
		Resolved: res.Resolved(),
		Column:   res.Column.Name,
	}

	if !res.Resolved() {
		out.Prefix = res.Prefix.String()
		out.Reason = res.Reason.String()
		out.Candidates = res.Candidates

		return out
	}

	out.Declared = res.Declared.String()
	out.Terminal = res.Terminal.String()
	out.Validator = res.Terminal.Validator()
	out.MultiValued = res.MultiValued

	return out
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve FILE PATH",
		Short: "Resolve a dotted path against the schema of a definition file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := mapping.LoadFile(args[0], mapping.WithDocumentCheck(a.cfg.Validate.StrictDocument))
			if err != nil {
				return err
			}

			path, err := mapping.ParsePath(args[1])
			if err != nil {
				return err
			}

			res := resolve.New(def.Catalog).Resolve(path)
			a.dumpTo(cmd.ErrOrStderr(), res)

			out := newResolveOutput(res)

			err = a.write(cmd.OutOrStdout(), out, func(w io.Writer) error {
				if out.Resolved {
					multi := ""
					if out.MultiValued {
						multi = ", multi-valued"
					}

					_, err := fmt.Fprintf(w, "%s: %s (%s%s)\n", out.Path, out.Terminal, out.Validator, multi)

					return err
				}

				_, err := fmt.Fprintf(w, "%s: unresolved at '%s': %s\n", out.Path, out.Prefix, out.Reason)

				return err
			})
			if err != nil {
				return err
			}

			if !out.Resolved {
				return errRejected
			}

			return nil
		},
	}
}
