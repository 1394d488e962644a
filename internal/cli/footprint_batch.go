package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/enejokabir/carbonpath/internal/batch"
	"github.com/enejokabir/carbonpath/internal/footprint"
	"github.com/enejokabir/carbonpath/internal/logging"
)

// FootprintBatchParams holds the parameters for the footprint batch
// command execution. Exported for testing.
type FootprintBatchParams struct {
	Dir         string
	FactorsPath string
	Concurrency int
	Output      string
}

// batchFileResult is the outcome for one activity file in a batch run.
// Files that fail to parse or calculate carry an error string instead of
// a footprint, so one bad file does not abort the run.
type batchFileResult struct {
	File      string               `json:"file"`
	Footprint *footprint.Footprint `json:"footprint,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// NewFootprintBatchCmd creates the "batch" subcommand. It calculates a
// footprint for every activity YAML file in a directory.
func NewFootprintBatchCmd() *cobra.Command {
	var params FootprintBatchParams

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate footprints for a directory of activity files",
		Long: `Calculate a carbon footprint for every activity data file in a directory.

Files are matched by the .yaml and .yml extensions and processed with
bounded concurrency. A file that fails to parse or calculate is reported
in the summary without stopping the rest of the batch.

Examples:
  # Process a directory with the default concurrency
  carbonpath footprint batch --dir reports/

  # Process with eight workers
  carbonpath footprint batch --dir reports/ --concurrency 8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeFootprintBatch(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Dir, "dir", "", "Directory of activity data YAML files (required)")
	cmd.Flags().StringVar(&params.FactorsPath, "factors", "", "Path to emission factor dataset YAML file")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", batch.DefaultConcurrency,
		fmt.Sprintf("Number of files to process in parallel (1-%d)", batch.MaxConcurrency))
	cmd.Flags().StringVar(&params.Output, "output", outputFormatTable, "Output format (table, json)")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

// listActivityFiles returns the sorted YAML files directly under dir.
func listActivityFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading activity directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// executeFootprintBatch runs the batch calculation workflow.
func executeFootprintBatch(cmd *cobra.Command, params FootprintBatchParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	cfg := configFromCmd(cmd)

	table, err := loadFactorTable(cfg, params.FactorsPath)
	if err != nil {
		return fmt.Errorf("loading emission factors: %w", err)
	}

	files, err := listActivityFiles(params.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		cmd.Printf("No activity files found in %s\n", params.Dir)
		return nil
	}

	runner, err := batch.NewRunner[string](params.Concurrency)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "footprint_batch").
		Str("dir", params.Dir).
		Int("file_count", len(files)).
		Int("concurrency", params.Concurrency).
		Msg("starting batch calculation")

	// Results are written by index, so concurrent workers never touch the
	// same slot.
	results := make([]batchFileResult, len(files))
	itemFn := func(_ context.Context, file string, index int) error {
		result := batchFileResult{File: file}

		inputs, readErr := readActivityInputs(file)
		if readErr != nil {
			result.Error = readErr.Error()
			results[index] = result
			return nil
		}

		fp, calcErr := footprint.Calculate(inputs, table)
		if calcErr != nil {
			result.Error = calcErr.Error()
			results[index] = result
			return nil
		}

		result.Footprint = fp
		results[index] = result
		return nil
	}

	if params.Concurrency > 1 {
		err = runner.RunConcurrent(ctx, files, itemFn)
	} else {
		err = runner.Run(ctx, files, itemFn)
	}
	if err != nil {
		return fmt.Errorf("processing batch: %w", err)
	}

	log.Info().Ctx(ctx).
		Str("operation", "footprint_batch").
		Int("file_count", len(files)).
		Dur("duration_ms", time.Since(start)).
		Msg("batch calculation complete")

	return renderBatchResults(cmd.OutOrStdout(), resolveOutputFormat(cmd, params.Output), results)
}

// renderBatchResults renders per-file totals and a batch grand total.
func renderBatchResults(w io.Writer, format string, results []batchFileResult) error {
	if format == outputFormatJSON {
		return renderJSON(w, results)
	}

	p := message.NewPrinter(language.English)

	renderTitle(w, "Batch Footprint Summary")

	var totalKg float64
	var failed int
	for _, r := range results {
		if r.Error != "" {
			failed++
			fmt.Fprintf(w, "  %-40s FAILED: %s\n", filepath.Base(r.File), r.Error)
			continue
		}
		totalKg += r.Footprint.TotalKgCO2e
		p.Fprintf(w, "  %-40s %12.1f kg CO2e\n", filepath.Base(r.File), r.Footprint.TotalKgCO2e)
	}
	fmt.Fprintln(w)

	p.Fprintf(w, "Files:   %d processed, %d failed\n", len(results)-failed, failed)
	p.Fprintf(w, "Total:   %.1f kg CO2e (%.2f tonnes)\n", totalKg, totalKg/footprint.KgPerTonne)
	return nil
}
