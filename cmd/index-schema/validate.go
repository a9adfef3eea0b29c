package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"index-schema/internal/validate"
)

type verdictOutput struct {
	Source      string   `json:"source" yaml:"source"`
	Table       string   `json:"table,omitempty" yaml:"table,omitempty"`
	RequestID   string   `json:"request_id" yaml:"request_id"`
	Accepted    bool     `json:"accepted" yaml:"accepted"`
	Mappers     int      `json:"mappers,omitempty" yaml:"mappers,omitempty"`
	Code        string   `json:"code,omitempty" yaml:"code,omitempty"`
	Message     string   `json:"message,omitempty" yaml:"message,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func newVerdictOutput(r validate.Report) verdictOutput {
	out := verdictOutput{
		Source:    r.Source,
		Table:     r.Table,
		RequestID: r.RequestID,
		Accepted:  r.Accepted(),
	}

	if r.Err != nil {
		out.Error = r.Err.Error()
		return out
	}

	if d := r.Verdict.Diagnostic; d != nil {
		out.Code = d.Code
		out.Message = d.Message
		out.Suggestions = d.Suggestions

		return out
	}

	out.Mappers = r.Verdict.Plan.Len()
	for _, w := range r.Verdict.Warnings() {
		out.Warnings = append(out.Warnings, w.Message)
	}

	return out
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Accept or reject index definition files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := validate.NewService(a.cfg.ValidatorConfig(), a.logger)

			reports, err := svc.ValidateFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			a.dumpTo(cmd.ErrOrStderr(), reports)

			outs := make([]verdictOutput, len(reports))
			for i, r := range reports {
				outs[i] = newVerdictOutput(r)
			}

			err = a.write(cmd.OutOrStdout(), outs, func(w io.Writer) error {
				for _, o := range outs {
					writeVerdictText(w, o)
				}

				return nil
			})
			if err != nil {
				return err
			}

			for _, r := range reports {
				if !r.Accepted() {
					return errRejected
				}
			}

			return nil
		},
	}
}

func writeVerdictText(w io.Writer, o verdictOutput) {
	switch {
	case o.Error != "":
		fmt.Fprintf(w, "%s: error: %s\n", o.Source, o.Error)
	case !o.Accepted:
		fmt.Fprintf(w, "%s: %s\n", o.Source, o.Message)

		if len(o.Suggestions) > 0 {
			fmt.Fprintf(w, "  did you mean: %v\n", o.Suggestions)
		}
	default:
		fmt.Fprintf(w, "%s: accepted (%d mappers)\n", o.Source, o.Mappers)

		for _, warn := range o.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", warn)
		}
	}
}
