// Package refdata loads the static reference tables the computation
// engines consume: emission factor datasets, sector benchmarks, and the
// grant/subsidy/consultant catalog.
//
// Defaults are embedded in the binary and loaded once at process start;
// the loaded tables are immutable. Callers that need alternate datasets
// (tests, regional deployments) load them from files through the same
// code path instead of patching globals.
package refdata

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/enejokabir/carbonpath/internal/benchmark"
	"github.com/enejokabir/carbonpath/internal/footprint"
	"github.com/enejokabir/carbonpath/internal/recommend"
)

//go:embed data
var embedded embed.FS

// Embedded dataset locations.
const (
	factorsDir     = "data/factors"
	benchmarksFile = "data/benchmarks.yaml"
	catalogFile    = "data/catalog.yaml"
)

// Loader validation errors.
var (
	ErrNoFactorDatasets = errors.New("no emission factor datasets found")
	ErrInvalidVersion   = errors.New("dataset version is not valid semver")
	ErrInvalidEntityID  = errors.New("catalog entity id is not a valid uuid")
	ErrUnknownKind      = errors.New("catalog entity kind must be grant, subsidy, or consultant")
)

// factorsDocument is the wire shape of one emission factor dataset.
type factorsDocument struct {
	DatasetYear int                        `yaml:"dataset_year"`
	Version     string                     `yaml:"version"`
	Factors     []footprint.EmissionFactor `yaml:"factors"`
}

// LoadFactors returns the active embedded factor table: the dataset with
// the highest year, breaking ties by highest semver version. Several
// dataset years may ship together; exactly one is active per calculation.
func LoadFactors() (*footprint.FactorTable, error) {
	entries, err := fs.ReadDir(embedded, factorsDir)
	if err != nil {
		return nil, fmt.Errorf("reading embedded factor datasets: %w", err)
	}

	var (
		best        *factorsDocument
		bestVersion *semver.Version
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		raw, readErr := embedded.ReadFile(path.Join(factorsDir, entry.Name()))
		if readErr != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), readErr)
		}

		doc, version, parseErr := parseFactorsDocument(raw)
		if parseErr != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), parseErr)
		}

		if best == nil ||
			doc.DatasetYear > best.DatasetYear ||
			(doc.DatasetYear == best.DatasetYear && version.GreaterThan(bestVersion)) {
			best = doc
			bestVersion = version
		}
	}

	if best == nil {
		return nil, ErrNoFactorDatasets
	}

	return footprint.NewFactorTable(best.DatasetYear, best.Version, best.Factors)
}

// LoadFactorsFromFile reads a single factor dataset from a YAML file.
func LoadFactorsFromFile(filePath string) (*footprint.FactorTable, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading factor dataset: %w", err)
	}

	doc, _, err := parseFactorsDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	return footprint.NewFactorTable(doc.DatasetYear, doc.Version, doc.Factors)
}

func parseFactorsDocument(raw []byte) (*factorsDocument, *semver.Version, error) {
	var doc factorsDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing factor dataset: %w", err)
	}

	version, err := semver.NewVersion(doc.Version)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidVersion, doc.Version)
	}

	return &doc, version, nil
}

// benchmarksDocument is the wire shape of the sector benchmark dataset.
type benchmarksDocument struct {
	Benchmarks []benchmark.SectorBenchmark `yaml:"benchmarks"`
}

// LoadBenchmarks returns the embedded sector benchmark table.
func LoadBenchmarks() (*benchmark.Table, error) {
	raw, err := embedded.ReadFile(benchmarksFile)
	if err != nil {
		return nil, fmt.Errorf("reading embedded benchmarks: %w", err)
	}
	return parseBenchmarks(raw)
}

// LoadBenchmarksFromFile reads a sector benchmark dataset from a YAML file.
func LoadBenchmarksFromFile(filePath string) (*benchmark.Table, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading benchmarks: %w", err)
	}
	return parseBenchmarks(raw)
}

func parseBenchmarks(raw []byte) (*benchmark.Table, error) {
	var doc benchmarksDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing benchmarks: %w", err)
	}
	return benchmark.NewTable(doc.Benchmarks)
}

// catalogEntity is the wire shape of one catalog entry. IDs travel as
// strings; uuid validation happens here at the load boundary.
type catalogEntity struct {
	ID              string   `yaml:"id"`
	Kind            string   `yaml:"kind"`
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	BusinessTypes   []string `yaml:"business_types"`
	LocationScopes  []string `yaml:"location_scopes"`
	MinEmployees    *int     `yaml:"min_employees"`
	MaxEmployees    *int     `yaml:"max_employees"`
	ExpertiseTags   []string `yaml:"expertise_tags"`
	Verified        bool     `yaml:"verified"`
	YearsExperience int      `yaml:"years_experience"`
}

// catalogDocument is the wire shape of the catalog dataset.
type catalogDocument struct {
	Entities []catalogEntity `yaml:"entities"`
}

// LoadCatalog returns the embedded grant/subsidy/consultant catalog in
// declaration order. Order matters: it is the tie-break for match
// ranking.
func LoadCatalog() ([]recommend.CatalogEntity, error) {
	raw, err := embedded.ReadFile(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalog: %w", err)
	}
	return parseCatalog(raw)
}

// LoadCatalogFromFile reads a catalog dataset from a YAML file.
func LoadCatalogFromFile(filePath string) ([]recommend.CatalogEntity, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return parseCatalog(raw)
}

func parseCatalog(raw []byte) ([]recommend.CatalogEntity, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	entities := make([]recommend.CatalogEntity, 0, len(doc.Entities))
	for _, e := range doc.Entities {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (%s)", ErrInvalidEntityID, e.ID, e.Name)
		}

		kind := recommend.EntityKind(e.Kind)
		switch kind {
		case recommend.KindGrant, recommend.KindSubsidy, recommend.KindConsultant:
		default:
			return nil, fmt.Errorf("%w: %q (%s)", ErrUnknownKind, e.Kind, e.Name)
		}

		entities = append(entities, recommend.CatalogEntity{
			ID:              id,
			Kind:            kind,
			Name:            e.Name,
			Description:     e.Description,
			BusinessTypes:   e.BusinessTypes,
			LocationScopes:  e.LocationScopes,
			MinEmployees:    e.MinEmployees,
			MaxEmployees:    e.MaxEmployees,
			ExpertiseTags:   e.ExpertiseTags,
			Verified:        e.Verified,
			YearsExperience: e.YearsExperience,
		})
	}

	return entities, nil
}
