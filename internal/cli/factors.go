package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enejokabir/carbonpath/internal/footprint"
)

// NewFactorsCmd creates the factors command group.
func NewFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Emission factor dataset commands",
	}
	cmd.AddCommand(NewFactorsListCmd())
	return cmd
}

// FactorsListParams holds the parameters for the factors list command
// execution. Exported for testing.
type FactorsListParams struct {
	Scope       int
	FactorsPath string
	Output      string
}

// NewFactorsListCmd creates the "list" subcommand, which prints the
// active emission factor dataset, optionally filtered by scope.
func NewFactorsListCmd() *cobra.Command {
	var params FactorsListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the emission factors in the active dataset",
		Example: `  # All factors in the active dataset
  carbonpath factors list

  # Scope 2 factors only
  carbonpath factors list --scope 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeFactorsList(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.Scope, "scope", 0, "Filter by reporting scope (1, 2, or 3; 0 = all)")
	cmd.Flags().StringVar(&params.FactorsPath, "factors", "", "Path to emission factor dataset YAML file")
	cmd.Flags().StringVar(&params.Output, "output", outputFormatTable, "Output format (table, json)")

	return cmd
}

// executeFactorsList runs the factor listing workflow.
func executeFactorsList(cmd *cobra.Command, params FactorsListParams) error {
	if params.Scope < 0 || params.Scope > 3 {
		return fmt.Errorf("invalid --scope %d: expected 1, 2, or 3", params.Scope)
	}

	cfg := configFromCmd(cmd)

	table, err := loadFactorTable(cfg, params.FactorsPath)
	if err != nil {
		return fmt.Errorf("loading emission factors: %w", err)
	}

	factors := table.Factors()
	if params.Scope != 0 {
		filtered := factors[:0]
		for _, f := range factors {
			if f.Scope == footprint.Scope(params.Scope) {
				filtered = append(filtered, f)
			}
		}
		factors = filtered
	}

	return renderFactors(cmd.OutOrStdout(), resolveOutputFormat(cmd, params.Output), table, factors)
}
