package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/enejokabir/carbonpath/internal/benchmark"
	"github.com/enejokabir/carbonpath/internal/config"
	"github.com/enejokabir/carbonpath/internal/footprint"
	"github.com/enejokabir/carbonpath/internal/readiness"
	"github.com/enejokabir/carbonpath/internal/recommend"
	"github.com/enejokabir/carbonpath/internal/refdata"
)

// loadFactorTable resolves the emission factor table for a command run.
// Precedence: --factors flag, then the config dataset override, then the
// embedded dataset with the highest year.
func loadFactorTable(cfg *config.Config, override string) (*footprint.FactorTable, error) {
	path := override
	if path == "" {
		path = cfg.Datasets.FactorsFile
	}
	if path != "" {
		return refdata.LoadFactorsFromFile(path)
	}
	return refdata.LoadFactors()
}

// loadBenchmarkTable resolves the sector benchmark table, with the same
// flag-then-config-then-embedded precedence as loadFactorTable.
func loadBenchmarkTable(cfg *config.Config, override string) (*benchmark.Table, error) {
	path := override
	if path == "" {
		path = cfg.Datasets.BenchmarksFile
	}
	if path != "" {
		return refdata.LoadBenchmarksFromFile(path)
	}
	return refdata.LoadBenchmarks()
}

// loadCatalog resolves the funding and consultant catalog.
func loadCatalog(cfg *config.Config, override string) ([]recommend.CatalogEntity, error) {
	path := override
	if path == "" {
		path = cfg.Datasets.CatalogFile
	}
	if path != "" {
		return refdata.LoadCatalogFromFile(path)
	}
	return refdata.LoadCatalog()
}

// readActivityInputs parses an activity data YAML file.
func readActivityInputs(path string) (*footprint.ActivityInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading activity inputs: %w", err)
	}
	var inputs footprint.ActivityInputs
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parsing activity inputs %s: %w", path, err)
	}
	return &inputs, nil
}

// readWorkspaceCounts parses a workspace counts YAML file for the
// readiness command.
func readWorkspaceCounts(path string) (*readiness.WorkspaceCounts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workspace counts: %w", err)
	}
	var counts readiness.WorkspaceCounts
	if err := yaml.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("parsing workspace counts %s: %w", path, err)
	}
	return &counts, nil
}
