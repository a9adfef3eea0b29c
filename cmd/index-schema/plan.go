package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"index-schema/internal/mapping"
	"index-schema/internal/validate"
)

type planEntryOutput struct {
	Mapper      string `json:"mapper" yaml:"mapper"`
	Column      string `json:"column" yaml:"column"`
	Type        string `json:"type" yaml:"type"`
	Declared    string `json:"declared" yaml:"declared"`
	Terminal    string `json:"terminal" yaml:"terminal"`
	Validator   string `json:"validator" yaml:"validator"`
	MultiValued bool   `json:"multi_valued" yaml:"multi_valued"`
}

type planOutput struct {
	Table   string            `json:"table" yaml:"table"`
	Entries []planEntryOutput `json:"entries" yaml:"entries"`
}

func newPlanOutput(p *validate.Plan) planOutput {
	out := planOutput{Table: p.Table, Entries: make([]planEntryOutput, 0, p.Len())}

	for _, e := range p.Entries {
		out.Entries = append(out.Entries, planEntryOutput{
			Mapper:      e.Mapper.Name,
			Column:      e.Mapper.Column.String(),
			Type:        e.Mapper.Type.String(),
			Declared:    e.Declared.String(),
			Terminal:    e.Terminal.String(),
			Validator:   e.Terminal.Validator(),
			MultiValued: e.MultiValued,
		})
	}

	return out
}

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan FILE",
		Short: "Print the mapper to storage type plan of an accepted definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := mapping.LoadFile(args[0], mapping.WithDocumentCheck(a.cfg.Validate.StrictDocument))
			if err != nil {
				return err
			}

			rep := validate.NewService(a.cfg.ValidatorConfig(), a.logger).ValidateDefinition(cmd.Context(), def)
			a.dumpTo(cmd.ErrOrStderr(), rep.Verdict)

			if !rep.Accepted() {
				fmt.Fprintln(cmd.OutOrStdout(), rep.Verdict.Message())
				return errRejected
			}

			out := newPlanOutput(rep.Verdict.Plan)

			return a.write(cmd.OutOrStdout(), out, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "MAPPER\tCOLUMN\tTYPE\tTERMINAL\tMULTI\n")

				for _, e := range out.Entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", e.Mapper, e.Column, e.Type, e.Terminal, e.MultiValued)
				}

				return tw.Flush()
			})
		},
	}
}
