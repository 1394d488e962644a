package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workspaceCountsYAML = `evidence_score: 80
freshness_score: 90
checklist_completed: 9
checklist_total: 10
obligations_total: 5
obligations_overdue: 1
`

func TestReadinessCmd_Table(t *testing.T) {
	counts := writeFile(t, t.TempDir(), "workspace.yaml", workspaceCountsYAML)

	out, err := execute(t, NewReadinessCmd(), "--counts", counts)
	require.NoError(t, err)

	assert.Contains(t, out, "Compliance Readiness")
	assert.Contains(t, out, "Evidence:      80 / 100")
	assert.Contains(t, out, "Checklist:     90 / 100")
	assert.Contains(t, out, "Obligations:   80 / 100")
	// 0.25*80 + 0.25*90 + 0.30*90 + 0.20*80 = 85.5, rounds to 86.
	assert.Contains(t, out, "Overall:       86 / 100")
}

func TestReadinessCmd_JSON(t *testing.T) {
	counts := writeFile(t, t.TempDir(), "workspace.yaml", workspaceCountsYAML)

	out, err := execute(t, NewReadinessCmd(), "--counts", counts, "--output", "json")
	require.NoError(t, err)

	var score struct {
		OverallScore int `json:"overall_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &score))
	assert.Equal(t, 86, score.OverallScore)
}

func TestReadinessCmd_EmptyWorkspace(t *testing.T) {
	counts := writeFile(t, t.TempDir(), "workspace.yaml", "{}\n")

	// No assigned work is vacuously complete, not a zero.
	out, err := execute(t, NewReadinessCmd(), "--counts", counts)
	require.NoError(t, err)
	assert.Contains(t, out, "Checklist:    100 / 100")
	assert.Contains(t, out, "Obligations:  100 / 100")
}

func TestReadinessCmd_InvalidCounts(t *testing.T) {
	counts := writeFile(t, t.TempDir(), "workspace.yaml", `checklist_completed: 5
checklist_total: 3
`)

	_, err := execute(t, NewReadinessCmd(), "--counts", counts)
	require.Error(t, err)
}

func TestReadinessCmd_MissingFile(t *testing.T) {
	_, err := execute(t, NewReadinessCmd(), "--counts", "/nonexistent/workspace.yaml")
	require.Error(t, err)
}
