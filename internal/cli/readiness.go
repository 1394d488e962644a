package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enejokabir/carbonpath/internal/logging"
	"github.com/enejokabir/carbonpath/internal/readiness"
)

// ReadinessParams holds the parameters for the readiness command
// execution. Exported for testing.
type ReadinessParams struct {
	CountsPath string
	Output     string
}

// NewReadinessCmd creates the "readiness" command. It aggregates a
// compliance readiness score from a workspace counts file.
func NewReadinessCmd() *cobra.Command {
	var params ReadinessParams

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Aggregate a compliance readiness score",
		Long: `Aggregate a 0-100 compliance readiness score from workspace counts.

The counts file snapshots the workspace state:

  evidence_score: 80
  freshness_score: 90
  checklist_completed: 9
  checklist_total: 10
  obligations_total: 5
  obligations_overdue: 0

Example:
  carbonpath readiness --counts workspace.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReadiness(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.CountsPath, "counts", "", "Path to workspace counts YAML file (required)")
	cmd.Flags().StringVar(&params.Output, "output", outputFormatTable, "Output format (table, json)")
	_ = cmd.MarkFlagRequired("counts")

	return cmd
}

// executeReadiness runs the readiness aggregation workflow.
func executeReadiness(cmd *cobra.Command, params ReadinessParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	counts, err := readWorkspaceCounts(params.CountsPath)
	if err != nil {
		return err
	}

	score, err := readiness.Aggregate(*counts)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("readiness aggregation failed")
		return fmt.Errorf("aggregating readiness: %w", err)
	}

	log.Info().Ctx(ctx).
		Str("operation", "readiness").
		Int("overall_score", score.OverallScore).
		Msg("readiness aggregation complete")

	return renderReadiness(cmd.OutOrStdout(), resolveOutputFormat(cmd, params.Output), score)
}
