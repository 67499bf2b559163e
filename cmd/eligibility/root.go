package main

import (
	"fmt"

	"github.com/HendryAvila/sheraa-eligibility/internal/config"
	"github.com/HendryAvila/sheraa-eligibility/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "eligibility",
		Short: "Sheraa eligibility checker",
		Long: `Guides students, founders, SMEs and international startups through a
short questionnaire and recommends the Sheraa program that fits them.

The wizard is served over MCP (serve) or HTTP (http). The question and
program catalogs are built in, or loaded from YAML or SQLite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			level := cfg.Log.Level
			if a.verbose {
				level = "debug"
			}
			logger, err := logging.New(cfg.Log.Mode, level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Config file (YAML); missing file means defaults")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newHTTPCmd(a),
		newCheckCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)
	return root
}
