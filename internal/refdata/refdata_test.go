package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enejokabir/carbonpath/internal/footprint"
	"github.com/enejokabir/carbonpath/internal/recommend"
)

func TestLoadFactors(t *testing.T) {
	table, err := LoadFactors()
	require.NoError(t, err)

	// Both embedded years parse; the newest dataset wins.
	assert.Equal(t, 2024, table.DatasetYear())
	assert.Equal(t, "1.2.0", table.Version())

	// Every recognized activity kind is priced in the shipped dataset,
	// so no valid input bundle can hit a factor gap out of the box.
	for _, kind := range footprint.AllKinds() {
		_, ok := table.Lookup(kind)
		assert.True(t, ok, "missing factor for %s", kind)
	}
}

func TestLoadFactorsFromFile(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		path := writeTempFile(t, "factors.yaml", `
dataset_year: 2025
version: 0.3.1
factors:
  - kind: electricity_kwh
    scope: 2
    coefficient_kg_per_unit: 0.19
    unit: kWh
    dataset_year: 2025
`)
		table, err := LoadFactorsFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2025, table.DatasetYear())
		assert.Equal(t, 1, table.Len())
	})

	t.Run("invalid semver rejected", func(t *testing.T) {
		path := writeTempFile(t, "factors.yaml", `
dataset_year: 2025
version: latest
factors: []
`)
		_, err := LoadFactorsFromFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("unknown activity kind rejected", func(t *testing.T) {
		path := writeTempFile(t, "factors.yaml", `
dataset_year: 2025
version: 1.0.0
factors:
  - kind: rocket_fuel_litres
    scope: 1
    coefficient_kg_per_unit: 3.0
    unit: litres
`)
		_, err := LoadFactorsFromFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, footprint.ErrUnknownActivityKind)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFactorsFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestLoadBenchmarks(t *testing.T) {
	table, err := LoadBenchmarks()
	require.NoError(t, err)
	assert.Positive(t, table.Len())

	b, err := table.Lookup("retail")
	require.NoError(t, err)
	assert.Less(t, b.GoodThresholdKg, b.AverageThresholdKg)
}

func TestLoadBenchmarksFromFile(t *testing.T) {
	path := writeTempFile(t, "benchmarks.yaml", `
benchmarks:
  - business_type: florists
    good_threshold_kg: 900
    average_threshold_kg: 1500
`)
	table, err := LoadBenchmarksFromFile(path)
	require.NoError(t, err)

	_, err = table.Lookup("florists")
	assert.NoError(t, err)
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, catalog)

	kinds := map[recommend.EntityKind]int{}
	for _, e := range catalog {
		kinds[e.Kind]++
		assert.NotEmpty(t, e.Name)
	}

	// The shipped catalog exercises all three entity families.
	assert.Positive(t, kinds[recommend.KindGrant])
	assert.Positive(t, kinds[recommend.KindSubsidy])
	assert.Positive(t, kinds[recommend.KindConsultant])
}

func TestLoadCatalogFromFile(t *testing.T) {
	t.Run("invalid uuid rejected", func(t *testing.T) {
		path := writeTempFile(t, "catalog.yaml", `
entities:
  - id: not-a-uuid
    kind: grant
    name: Broken Grant
`)
		_, err := LoadCatalogFromFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEntityID)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		path := writeTempFile(t, "catalog.yaml", `
entities:
  - id: 7b5a1c2e-9d34-4f6a-8b21-3c9e5d7f0a14
    kind: loan
    name: Some Loan
`)
		_, err := LoadCatalogFromFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
