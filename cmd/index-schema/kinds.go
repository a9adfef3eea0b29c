package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"index-schema/internal/catalog"
	"index-schema/internal/mapping"
	"index-schema/internal/match"
)

type kindOutput struct {
	Kind      string   `json:"kind" yaml:"kind"`
	Validator string   `json:"validator" yaml:"validator"`
	Mappers   []string `json:"mappers" yaml:"mappers"`
}

func kindsFor(mapper string) ([]catalog.Kind, error) {
	if mapper == "" {
		return catalog.AllKinds(), nil
	}

	st, err := mapping.ParseSemanticType(mapper)
	if err != nil {
		return nil, err
	}

	return match.SupportedKinds(st), nil
}

func newKindsCmd(a *app) *cobra.Command {
	var mapper string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "Print which mapper types can index which storage kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds, err := kindsFor(mapper)
			if err != nil {
				return err
			}

			out := make([]kindOutput, 0, len(kinds))

			for _, k := range kinds {
				ko := kindOutput{Kind: k.String(), Validator: k.Validator(), Mappers: []string{}}
				for _, st := range match.MapperTypesFor(k) {
					ko.Mappers = append(ko.Mappers, st.String())
				}

				out = append(out, ko)
			}

			return a.write(cmd.OutOrStdout(), out, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "KIND\tVALIDATOR\tMAPPERS\n")

				for _, ko := range out {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", ko.Kind, ko.Validator, strings.Join(ko.Mappers, ", "))
				}

				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&mapper, "mapper", "", "only list the kinds this mapper type accepts")

	return cmd
}
