package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"index-schema/internal/config"
	"index-schema/internal/logger"
)

// errRejected is returned once the rejection has been printed; main exits
// non-zero without printing it again.
var errRejected = errors.New("rejected")

type app struct {
	configPath string
	output     string
	logLevel   string
	strict     bool
	dump       bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "index-schema",
		Short:         "Validate search index definitions against a table schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./index-schema.yaml if present)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text, yaml or json")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&a.strict, "strict", false, "check definition files against the document schema")
	flags.BoolVar(&a.dump, "dump", false, "dump internal results to stderr")

	root.AddCommand(
		newValidateCmd(a),
		newResolveCmd(a),
		newPlanCmd(a),
		newKindsCmd(a),
	)

	return root
}

// setup loads the configuration and applies explicitly set flags on top.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if flags.Changed("strict") {
		cfg.Validate.StrictDocument = a.strict
	}

	if err := cfg.Check(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.New(cmd.ErrOrStderr(), logger.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})

	return nil
}
