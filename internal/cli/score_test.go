package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCmd_Table(t *testing.T) {
	inputs := writeFile(t, t.TempDir(), "activity.yaml", retailActivityYAML)

	out, err := execute(t, NewScoreCmd(), "--inputs", inputs, "--business-type", "retail")
	require.NoError(t, err)

	// 207 kg per employee is well under the retail good threshold.
	assert.Contains(t, out, "Benchmark Score")
	assert.Contains(t, out, "retail")
	assert.Contains(t, out, "good")
	assert.Contains(t, out, "100 / 100")
}

func TestScoreCmd_JSON(t *testing.T) {
	inputs := writeFile(t, t.TempDir(), "activity.yaml", retailActivityYAML)

	out, err := execute(t, NewScoreCmd(),
		"--inputs", inputs, "--business-type", "retail", "--output", "json")
	require.NoError(t, err)

	var resp struct {
		BusinessType string `json:"business_type"`
		Category     string `json:"category"`
		Score        *int   `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "retail", resp.BusinessType)
	assert.Equal(t, "good", resp.Category)
	require.NotNil(t, resp.Score)
	assert.Equal(t, 100, *resp.Score)
}

func TestScoreCmd_UnknownBusinessType(t *testing.T) {
	inputs := writeFile(t, t.TempDir(), "activity.yaml", retailActivityYAML)

	// A missing benchmark still reports the footprint, just unscored.
	out, err := execute(t, NewScoreCmd(), "--inputs", inputs, "--business-type", "zeppelin_repair")
	require.NoError(t, err)
	assert.Contains(t, out, "No benchmark available")
	assert.Contains(t, out, "2,070.0 kg CO2e")
	assert.NotContains(t, out, "Score:")
}

func TestScoreCmd_BenchmarksOverride(t *testing.T) {
	dir := t.TempDir()
	inputs := writeFile(t, dir, "activity.yaml", retailActivityYAML)
	benchmarks := writeFile(t, dir, "benchmarks.yaml", `benchmarks:
  - business_type: retail
    avg_kg_co2e_per_employee: 150
    good_threshold_kg: 100
    average_threshold_kg: 150
`)

	// 207 per employee is past 150 but under the 300 floor.
	out, err := execute(t, NewScoreCmd(),
		"--inputs", inputs, "--business-type", "retail", "--benchmarks", benchmarks)
	require.NoError(t, err)
	assert.Contains(t, out, "needs_improvement")
}

func TestScoreCmd_MissingBusinessTypeFlag(t *testing.T) {
	inputs := writeFile(t, t.TempDir(), "activity.yaml", retailActivityYAML)

	_, err := execute(t, NewScoreCmd(), "--inputs", inputs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "business-type")
}
