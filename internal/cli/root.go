// Package cli wires the computation engines to the carbonpath command
// line. Commands stay thin: they parse flags, load reference data, call
// one engine, and render the result.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/enejokabir/carbonpath/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// configKey is the context key under which the loaded config travels
// from the root command to subcommands.
type configKey struct{}

// NewRootCmd creates the root Cobra command for the carbonpath CLI.
// It wires up configuration loading, logging, tracing, and the
// footprint, score, readiness, match, and factors subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "carbonpath",
		Short:   "Sustainability compliance toolkit",
		Long:    "Carbonpath: calculate carbon footprints, benchmark scores, readiness scores, and funding matches",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.DefaultPath()
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			setupLogging(cmd, cfg)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.carbonpath/config.yaml)")

	cmd.AddCommand(NewFootprintCmd(), NewScoreCmd(), NewReadinessCmd(), NewMatchCmd(), NewFactorsCmd())

	return cmd
}

const rootCmdExample = `  # Calculate a footprint from an activity data file
  carbonpath footprint calculate --inputs activity.yaml

  # Calculate footprints for a directory of activity files
  carbonpath footprint batch --dir reports/ --concurrency 8

  # Score a footprint against the sector benchmark
  carbonpath score --inputs activity.yaml --business-type retail

  # Aggregate a compliance readiness score
  carbonpath readiness --counts workspace.yaml

  # Rank funding and consultants for a business profile
  carbonpath match --business-type retail --employees 12 --location manchester

  # List the emission factors in the active dataset
  carbonpath factors list --scope 2`

// configFromCmd returns the config attached by the root command, or
// fresh defaults when a subcommand runs standalone (tests).
func configFromCmd(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.New()
}
