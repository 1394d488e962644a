package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/enejokabir/carbonpath/internal/equivalency"
	"github.com/enejokabir/carbonpath/internal/footprint"
	"github.com/enejokabir/carbonpath/internal/logging"
)

// NewFootprintCmd creates the footprint command group with the calculate
// and batch subcommands.
func NewFootprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Carbon footprint calculation commands",
	}
	cmd.AddCommand(NewFootprintCalculateCmd(), NewFootprintBatchCmd())
	return cmd
}

// FootprintCalculateParams holds the parameters for the footprint
// calculate command execution. Exported for testing.
type FootprintCalculateParams struct {
	InputsPath  string
	FactorsPath string
	Output      string
}

// NewFootprintCalculateCmd creates the "calculate" subcommand. It reads
// an activity data YAML file, prices it against the active emission
// factor dataset, and renders the footprint with equivalency prose.
func NewFootprintCalculateCmd() *cobra.Command {
	var params FootprintCalculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a carbon footprint from activity data",
		Long: `Calculate a reporting-period carbon footprint from an activity data file.

The file lists activity quantities grouped by scope:

  period_start: 2025-01-01
  period_end: 2025-12-31
  employees_count: 12
  scope2:
    electricity_kwh: 10000

Examples:
  # Calculate with the embedded factor dataset
  carbonpath footprint calculate --inputs activity.yaml

  # Calculate against a custom factor dataset
  carbonpath footprint calculate --inputs activity.yaml --factors factors_2023.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeFootprintCalculate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.InputsPath, "inputs", "", "Path to activity data YAML file (required)")
	cmd.Flags().StringVar(&params.FactorsPath, "factors", "", "Path to emission factor dataset YAML file")
	cmd.Flags().StringVar(&params.Output, "output", outputFormatTable, "Output format (table, json)")
	_ = cmd.MarkFlagRequired("inputs")

	return cmd
}

// executeFootprintCalculate runs the footprint calculation workflow.
func executeFootprintCalculate(cmd *cobra.Command, params FootprintCalculateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	cfg := configFromCmd(cmd)

	table, err := loadFactorTable(cfg, params.FactorsPath)
	if err != nil {
		return fmt.Errorf("loading emission factors: %w", err)
	}

	inputs, err := readActivityInputs(params.InputsPath)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "footprint_calculate").
		Str("inputs_path", params.InputsPath).
		Int("dataset_year", table.DatasetYear()).
		Msg("starting footprint calculation")

	fp, err := footprint.Calculate(inputs, table)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("footprint calculation failed")
		return fmt.Errorf("calculating footprint: %w", err)
	}

	eq, err := equivalency.FromKg(fp.TotalKgCO2e)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("skipping equivalencies")
		eq = equivalency.Output{IsEmpty: true}
	}

	log.Info().Ctx(ctx).
		Str("operation", "footprint_calculate").
		Float64("total_kg_co2e", fp.TotalKgCO2e).
		Dur("duration_ms", time.Since(start)).
		Msg("footprint calculation complete")

	return renderFootprint(cmd.OutOrStdout(), resolveOutputFormat(cmd, params.Output), fp, eq)
}
