package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/enejokabir/carbonpath/internal/benchmark"
	"github.com/enejokabir/carbonpath/internal/footprint"
	"github.com/enejokabir/carbonpath/internal/logging"
)

// ScoreParams holds the parameters for the score command execution.
// Exported for testing.
type ScoreParams struct {
	InputsPath     string
	BusinessType   string
	FactorsPath    string
	BenchmarksPath string
	Output         string
}

// NewScoreCmd creates the "score" command. It calculates a footprint
// and evaluates its per-employee intensity against the sector benchmark
// for the given business type.
func NewScoreCmd() *cobra.Command {
	var params ScoreParams

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a footprint against the sector benchmark",
		Long: `Calculate a footprint and score its per-employee intensity against the
benchmark for the given business type.

A business type without a benchmark is not an error: the footprint is
still reported, just without a category or score.

Examples:
  # Score a retail business
  carbonpath score --inputs activity.yaml --business-type retail

  # Score against a custom benchmark table
  carbonpath score --inputs activity.yaml --business-type retail --benchmarks benchmarks.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeScore(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.InputsPath, "inputs", "", "Path to activity data YAML file (required)")
	cmd.Flags().StringVar(&params.BusinessType, "business-type", "", "Business type to benchmark against (required)")
	cmd.Flags().StringVar(&params.FactorsPath, "factors", "", "Path to emission factor dataset YAML file")
	cmd.Flags().StringVar(&params.BenchmarksPath, "benchmarks", "", "Path to sector benchmark YAML file")
	cmd.Flags().StringVar(&params.Output, "output", outputFormatTable, "Output format (table, json)")
	_ = cmd.MarkFlagRequired("inputs")
	_ = cmd.MarkFlagRequired("business-type")

	return cmd
}

// executeScore runs the footprint-then-benchmark pipeline.
func executeScore(cmd *cobra.Command, params ScoreParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	cfg := configFromCmd(cmd)

	factorTable, err := loadFactorTable(cfg, params.FactorsPath)
	if err != nil {
		return fmt.Errorf("loading emission factors: %w", err)
	}
	benchmarkTable, err := loadBenchmarkTable(cfg, params.BenchmarksPath)
	if err != nil {
		return fmt.Errorf("loading benchmarks: %w", err)
	}

	inputs, err := readActivityInputs(params.InputsPath)
	if err != nil {
		return err
	}

	fp, err := footprint.Calculate(inputs, factorTable)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("footprint calculation failed")
		return fmt.Errorf("calculating footprint: %w", err)
	}

	resp := scoreResponse{
		Footprint:    fp,
		BusinessType: params.BusinessType,
	}

	// A missing benchmark degrades to an unscored footprint instead of
	// failing the whole command.
	sector, err := benchmarkTable.Lookup(params.BusinessType)
	switch {
	case errors.Is(err, benchmark.ErrBenchmarkNotFound):
		log.Warn().Ctx(ctx).
			Str("business_type", params.BusinessType).
			Msg("no benchmark for business type, reporting footprint unscored")
	case err != nil:
		return fmt.Errorf("looking up benchmark: %w", err)
	default:
		category, score, evalErr := benchmark.Evaluate(fp.KgCO2ePerEmployee, sector)
		if evalErr != nil {
			return fmt.Errorf("scoring footprint: %w", evalErr)
		}
		resp.Benchmark = &sector
		resp.Category = category
		resp.Score = &score
	}

	log.Info().Ctx(ctx).
		Str("operation", "score").
		Str("business_type", params.BusinessType).
		Float64("kg_co2e_per_employee", fp.KgCO2ePerEmployee).
		Dur("duration_ms", time.Since(start)).
		Msg("benchmark scoring complete")

	return renderScore(cmd.OutOrStdout(), resolveOutputFormat(cmd, params.Output), resp)
}
