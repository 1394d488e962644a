package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enejokabir/carbonpath/internal/logging"
	"github.com/enejokabir/carbonpath/internal/recommend"
)

// MatchParams holds the parameters for the match command execution.
// Exported for testing.
type MatchParams struct {
	Kind         string
	BusinessType string
	Employees    int
	Location     string
	Needs        []string
	CatalogPath  string
	Top          int
	Output       string
}

// NewMatchCmd creates the "match" command. It ranks the funding and
// consultant catalog against a business profile built from flags.
func NewMatchCmd() *cobra.Command {
	var params MatchParams

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank funding and consultants for a business profile",
		Long: `Rank the grant, subsidy, and consultant catalog for a business profile.

Without any profile flags the catalog is browsed anonymously: every
entry scores the neutral base and carries a sign-in hint instead of a
personalized explanation.

Examples:
  # Personalized ranking
  carbonpath match --business-type retail --employees 12 --location manchester

  # Consultants only, matched on needs
  carbonpath match --kind consultant --business-type retail --needs energy --needs waste

  # Anonymous browsing
  carbonpath match`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeMatch(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Kind, "kind", "", "Filter by entity kind (grant, subsidy, consultant)")
	cmd.Flags().StringVar(&params.BusinessType, "business-type", "", "Business type of the profile")
	cmd.Flags().IntVar(&params.Employees, "employees", 0, "Employee headcount of the profile")
	cmd.Flags().StringVar(&params.Location, "location", "", "Location of the profile")
	cmd.Flags().StringArrayVar(&params.Needs, "needs", nil, "Sustainability need to match on (repeatable)")
	cmd.Flags().StringVar(&params.CatalogPath, "catalog", "", "Path to catalog YAML file")
	cmd.Flags().IntVar(&params.Top, "top", 0, "Limit output to the N best matches (0 = all)")
	cmd.Flags().StringVar(&params.Output, "output", outputFormatTable, "Output format (table, json)")

	return cmd
}

// profileFromParams builds the match profile, or nil when no profile
// flag was supplied (anonymous browsing).
func profileFromParams(params MatchParams) *recommend.Profile {
	if params.BusinessType == "" && params.Employees == 0 && params.Location == "" && len(params.Needs) == 0 {
		return nil
	}
	return &recommend.Profile{
		BusinessType:   params.BusinessType,
		EmployeesCount: params.Employees,
		Location:       params.Location,
		Needs:          params.Needs,
	}
}

// validateMatchKind checks the --kind flag against the known entity kinds.
func validateMatchKind(kind string) error {
	switch recommend.EntityKind(kind) {
	case "", recommend.KindGrant, recommend.KindSubsidy, recommend.KindConsultant:
		return nil
	default:
		return fmt.Errorf("invalid --kind %q: expected grant, subsidy, or consultant", kind)
	}
}

// executeMatch runs the catalog matching workflow.
func executeMatch(cmd *cobra.Command, params MatchParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := validateMatchKind(params.Kind); err != nil {
		return err
	}

	cfg := configFromCmd(cmd)

	catalog, err := loadCatalog(cfg, params.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if params.Kind != "" {
		filtered := catalog[:0]
		for _, entity := range catalog {
			if entity.Kind == recommend.EntityKind(params.Kind) {
				filtered = append(filtered, entity)
			}
		}
		catalog = filtered
	}

	profile := profileFromParams(params)
	results := recommend.MatchAll(catalog, profile)

	if params.Top > 0 && params.Top < len(results) {
		results = results[:params.Top]
	}

	log.Info().Ctx(ctx).
		Str("operation", "match").
		Bool("anonymous", profile == nil).
		Int("result_count", len(results)).
		Msg("catalog matching complete")

	return renderMatches(cmd.OutOrStdout(), resolveOutputFormat(cmd, params.Output), results)
}
