package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a command with args against a buffer and returns output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const retailActivityYAML = `period_start: 2025-01-01
period_end: 2025-12-31
employees_count: 10
scope2:
  electricity_kwh: 10000
`

func TestFootprintCalculateCmd_Table(t *testing.T) {
	inputs := writeFile(t, t.TempDir(), "activity.yaml", retailActivityYAML)

	out, err := execute(t, NewFootprintCalculateCmd(), "--inputs", inputs)
	require.NoError(t, err)

	// 10,000 kWh at the embedded 2024 grid factor of 0.207.
	assert.Contains(t, out, "Carbon Footprint")
	assert.Contains(t, out, "2,070.0 kg CO2e")
	assert.Contains(t, out, "electricity_kwh")
	assert.Contains(t, out, "Equivalent to driving")
}

func TestFootprintCalculateCmd_JSON(t *testing.T) {
	inputs := writeFile(t, t.TempDir(), "activity.yaml", retailActivityYAML)

	out, err := execute(t, NewFootprintCalculateCmd(), "--inputs", inputs, "--output", "json")
	require.NoError(t, err)

	var resp struct {
		Footprint struct {
			TotalKgCO2e       float64 `json:"total_kg_co2e"`
			KgCO2ePerEmployee float64 `json:"kg_co2e_per_employee"`
			DatasetYear       int     `json:"dataset_year"`
		} `json:"footprint"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.InDelta(t, 2070.0, resp.Footprint.TotalKgCO2e, 1e-9)
	assert.InDelta(t, 207.0, resp.Footprint.KgCO2ePerEmployee, 1e-9)
	assert.Equal(t, 2024, resp.Footprint.DatasetYear)
}

func TestFootprintCalculateCmd_FactorsOverride(t *testing.T) {
	dir := t.TempDir()
	inputs := writeFile(t, dir, "activity.yaml", retailActivityYAML)
	factors := writeFile(t, dir, "factors.yaml", `dataset_year: 2023
version: 1.0.0
factors:
  - kind: electricity_kwh
    scope: 2
    coefficient_kg_per_unit: 0.233
    unit: kWh
`)

	out, err := execute(t, NewFootprintCalculateCmd(),
		"--inputs", inputs, "--factors", factors)
	require.NoError(t, err)
	assert.Contains(t, out, "2,330.0 kg CO2e")
}

func TestFootprintCalculateCmd_MissingInputsFlag(t *testing.T) {
	_, err := execute(t, NewFootprintCalculateCmd())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inputs")
}

func TestFootprintCalculateCmd_InvalidActivityFile(t *testing.T) {
	inputs := writeFile(t, t.TempDir(), "activity.yaml", `employees_count: 0
scope2:
  electricity_kwh: 100
`)

	_, err := execute(t, NewFootprintCalculateCmd(), "--inputs", inputs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employees")
}

func TestFootprintBatchCmd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", retailActivityYAML)
	writeFile(t, dir, "b.yaml", `employees_count: 5
scope2:
  electricity_kwh: 1000
`)
	writeFile(t, dir, "broken.yaml", `employees_count: -1`)
	writeFile(t, dir, "notes.txt", "not an activity file")

	out, err := execute(t, NewFootprintBatchCmd(), "--dir", dir, "--concurrency", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "a.yaml")
	assert.Contains(t, out, "b.yaml")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "2 processed, 1 failed")
	assert.NotContains(t, out, "notes.txt")
}

func TestFootprintBatchCmd_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", retailActivityYAML)

	out, err := execute(t, NewFootprintBatchCmd(), "--dir", dir, "--output", "json")
	require.NoError(t, err)

	var results []struct {
		File      string `json:"file"`
		Footprint *struct {
			TotalKgCO2e float64 `json:"total_kg_co2e"`
		} `json:"footprint"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Footprint)
	assert.InDelta(t, 2070.0, results[0].Footprint.TotalKgCO2e, 1e-9)
}

func TestFootprintBatchCmd_EmptyDir(t *testing.T) {
	out, err := execute(t, NewFootprintBatchCmd(), "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No activity files found")
}

func TestFootprintBatchCmd_InvalidConcurrency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", retailActivityYAML)

	_, err := execute(t, NewFootprintBatchCmd(), "--dir", dir, "--concurrency", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}
