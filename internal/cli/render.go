package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/enejokabir/carbonpath/internal/benchmark"
	"github.com/enejokabir/carbonpath/internal/equivalency"
	"github.com/enejokabir/carbonpath/internal/footprint"
	"github.com/enejokabir/carbonpath/internal/readiness"
	"github.com/enejokabir/carbonpath/internal/recommend"
)

// Output formats accepted by the --output flag.
const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
)

// resolveOutputFormat applies the configured default format when the
// --output flag was not set explicitly.
func resolveOutputFormat(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("output") {
		return flagValue
	}
	if format := configFromCmd(cmd).Output.Format; format != "" {
		return format
	}
	return flagValue
}

// isWriterTerminal reports whether the writer is an interactive terminal.
// Styled output is reserved for terminals; plain text goes everywhere else.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func renderTitle(w io.Writer, title string) {
	if isWriterTerminal(w) {
		fmt.Fprintln(w, titleStyle().Render(title))
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderFootprintTable renders a calculated footprint with its scope
// totals, per-line breakdown, intensities, and equivalency prose.
func renderFootprintTable(w io.Writer, fp *footprint.Footprint, eq equivalency.Output) error {
	p := message.NewPrinter(language.English)

	renderTitle(w, "Carbon Footprint")

	p.Fprintf(w, "Dataset Year:      %d\n", fp.DatasetYear)
	p.Fprintf(w, "Scope 1 (direct):  %.1f kg CO2e\n", fp.Scope1TotalKgCO2e)
	p.Fprintf(w, "Scope 2 (energy):  %.1f kg CO2e\n", fp.Scope2TotalKgCO2e)
	p.Fprintf(w, "Scope 3 (indirect): %.1f kg CO2e\n", fp.Scope3TotalKgCO2e)
	fmt.Fprintln(w)
	p.Fprintf(w, "Total:             %.1f kg CO2e (%.2f tonnes)\n", fp.TotalKgCO2e, fp.TotalTonnesCO2e)
	p.Fprintf(w, "Per Employee:      %.1f kg CO2e\n", fp.KgCO2ePerEmployee)
	if fp.KgCO2ePerSqm != nil {
		p.Fprintf(w, "Per Square Metre:  %.1f kg CO2e\n", *fp.KgCO2ePerSqm)
	}
	fmt.Fprintln(w)

	if len(fp.Breakdown) > 0 {
		if isWriterTerminal(w) {
			fmt.Fprintln(w, labelStyle().Render("Breakdown:"))
		} else {
			fmt.Fprintln(w, "Breakdown:")
		}
		for _, line := range fp.Breakdown {
			p.Fprintf(w, "  %-26s %12.1f %-9s x %.4f = %10.1f kg CO2e\n",
				string(line.Kind), line.Quantity, line.Unit, line.CoefficientKgPerUnit, line.KgCO2e)
		}
		fmt.Fprintln(w)
	}

	if !eq.IsEmpty && eq.DisplayText != "" {
		fmt.Fprintln(w, eq.DisplayText)
	}

	return nil
}

// footprintResponse is the JSON shape of a footprint calculation,
// bundling the footprint with its equivalencies.
type footprintResponse struct {
	Footprint     *footprint.Footprint `json:"footprint"`
	Equivalencies equivalency.Output   `json:"equivalencies"`
}

func renderFootprint(w io.Writer, format string, fp *footprint.Footprint, eq equivalency.Output) error {
	if format == outputFormatJSON {
		return renderJSON(w, footprintResponse{Footprint: fp, Equivalencies: eq})
	}
	return renderFootprintTable(w, fp, eq)
}

// scoreResponse is the JSON shape of the score command. Benchmark
// fields are omitted when no benchmark exists for the business type.
type scoreResponse struct {
	Footprint    *footprint.Footprint       `json:"footprint"`
	BusinessType string                     `json:"business_type"`
	Benchmark    *benchmark.SectorBenchmark `json:"benchmark,omitempty"`
	Category     benchmark.Category         `json:"category,omitempty"`
	Score        *int                       `json:"score,omitempty"`
}

func renderScoreTable(w io.Writer, resp scoreResponse) error {
	p := message.NewPrinter(language.English)

	renderTitle(w, "Benchmark Score")

	p.Fprintf(w, "Business Type:     %s\n", resp.BusinessType)
	p.Fprintf(w, "Total Footprint:   %.1f kg CO2e\n", resp.Footprint.TotalKgCO2e)
	p.Fprintf(w, "Per Employee:      %.1f kg CO2e\n", resp.Footprint.KgCO2ePerEmployee)
	fmt.Fprintln(w)

	if resp.Benchmark == nil {
		fmt.Fprintf(w, "No benchmark available for business type %q; footprint reported without a score.\n",
			resp.BusinessType)
		return nil
	}

	p.Fprintf(w, "Sector Average:    %.1f kg CO2e per employee\n", resp.Benchmark.AvgKgCO2ePerEmployee)
	p.Fprintf(w, "Good Threshold:    %.1f kg CO2e per employee\n", resp.Benchmark.GoodThresholdKg)
	fmt.Fprintln(w)

	category := string(resp.Category)
	if isWriterTerminal(w) {
		category = labelStyle().Render(category)
	}
	p.Fprintf(w, "Category:          %s\n", category)
	p.Fprintf(w, "Score:             %d / 100\n", *resp.Score)
	return nil
}

func renderScore(w io.Writer, format string, resp scoreResponse) error {
	if format == outputFormatJSON {
		return renderJSON(w, resp)
	}
	return renderScoreTable(w, resp)
}

func renderReadinessTable(w io.Writer, score readiness.Score) error {
	renderTitle(w, "Compliance Readiness")

	fmt.Fprintf(w, "Evidence:     %3d / 100\n", score.EvidenceScore)
	fmt.Fprintf(w, "Freshness:    %3d / 100\n", score.FreshnessScore)
	fmt.Fprintf(w, "Checklist:    %3d / 100\n", score.ChecklistScore)
	fmt.Fprintf(w, "Obligations:  %3d / 100\n", score.ObligationsScore)
	fmt.Fprintln(w)

	overall := fmt.Sprintf("Overall:      %3d / 100", score.OverallScore)
	if isWriterTerminal(w) {
		overall = labelStyle().Render(overall)
	}
	fmt.Fprintln(w, overall)
	return nil
}

func renderReadiness(w io.Writer, format string, score readiness.Score) error {
	if format == outputFormatJSON {
		return renderJSON(w, score)
	}
	return renderReadinessTable(w, score)
}

func renderMatchesTable(w io.Writer, results []recommend.MatchResult) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No catalog entries matched")
		return nil
	}

	renderTitle(w, "Recommended Matches")

	for i, r := range results {
		name := r.Entity.Name
		if isWriterTerminal(w) {
			name = labelStyle().Render(name)
		}
		fmt.Fprintf(w, "%2d. %s (%s) - score %d\n", i+1, name, r.Entity.Kind, r.MatchScore)
		for _, reason := range r.MatchReasons {
			fmt.Fprintf(w, "      - %s\n", reason)
		}
	}
	return nil
}

func renderMatches(w io.Writer, format string, results []recommend.MatchResult) error {
	if format == outputFormatJSON {
		return renderJSON(w, results)
	}
	return renderMatchesTable(w, results)
}

func renderFactorsTable(w io.Writer, table *footprint.FactorTable, factors []footprint.EmissionFactor) error {
	renderTitle(w, "Emission Factors")

	fmt.Fprintf(w, "Dataset Year: %d (version %s)\n\n", table.DatasetYear(), table.Version())
	fmt.Fprintf(w, "%-26s %-7s %-10s %s\n", "KIND", "SCOPE", "UNIT", "KG CO2E / UNIT")
	for _, f := range factors {
		fmt.Fprintf(w, "%-26s %-7s %-10s %.4f\n", string(f.Kind), f.Scope, f.Unit, f.CoefficientKgPerUnit)
	}
	return nil
}

// factorsResponse is the JSON shape of the factors list command.
type factorsResponse struct {
	DatasetYear int                        `json:"dataset_year"`
	Version     string                     `json:"version"`
	Factors     []footprint.EmissionFactor `json:"factors"`
}

func renderFactors(w io.Writer, format string, table *footprint.FactorTable, factors []footprint.EmissionFactor) error {
	if format == outputFormatJSON {
		return renderJSON(w, factorsResponse{
			DatasetYear: table.DatasetYear(),
			Version:     table.Version(),
			Factors:     factors,
		})
	}
	return renderFactorsTable(w, table, factors)
}
