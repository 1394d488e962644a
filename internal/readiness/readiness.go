// Package readiness combines four independent sub-scores into one
// weighted workspace readiness figure.
//
// Aggregation is total, never incremental: every call recomputes all
// sub-scores from current counts. Incrementally patching an aggregate
// across several independent collections is the classic source of silent
// drift, and the counts are cheap to recompute in full.
package readiness

import (
	"fmt"
	"math"
)

// Fixed sub-score weights. They sum to 1.0, which keeps the overall
// score inside [0,100] whenever the sub-scores are.
const (
	WeightEvidence    = 0.25
	WeightFreshness   = 0.25
	WeightChecklist   = 0.30
	WeightObligations = 0.20
)

// Sub-score bounds.
const (
	minSubScore = 0
	maxSubScore = 100
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Input validation errors.
var (
	// ErrNegativeCount indicates a negative collection count.
	ErrNegativeCount = constError("workspace count cannot be negative")

	// ErrCountExceedsTotal indicates a partial count larger than its total.
	ErrCountExceedsTotal = constError("partial count exceeds total")

	// ErrSubScoreOutOfRange indicates an externally supplied sub-score
	// outside [0,100].
	ErrSubScoreOutOfRange = constError("sub-score must be between 0 and 100")
)

// WorkspaceCounts is a consistent snapshot of the workspace collections
// the aggregate is derived from. The caller must gather all counts under
// one logical read; this engine owns no state and performs no locking.
type WorkspaceCounts struct {
	EvidenceTotal    int `yaml:"evidence_total"    json:"evidence_total"`
	EvidenceCurrent  int `yaml:"evidence_current"  json:"evidence_current"`
	EvidenceExpiring int `yaml:"evidence_expiring" json:"evidence_expiring"`
	EvidenceExpired  int `yaml:"evidence_expired"  json:"evidence_expired"`

	ObligationsTotal    int `yaml:"obligations_total"    json:"obligations_total"`
	ObligationsOverdue  int `yaml:"obligations_overdue"  json:"obligations_overdue"`
	ObligationsUpcoming int `yaml:"obligations_upcoming" json:"obligations_upcoming"`

	ChecklistTotal     int `yaml:"checklist_total"     json:"checklist_total"`
	ChecklistCompleted int `yaml:"checklist_completed" json:"checklist_completed"`

	// EvidenceScore and FreshnessScore are pre-computed ratios in [0,100]
	// supplied by the evidence-tracking collaborator. This engine only
	// combines them.
	EvidenceScore  float64 `yaml:"evidence_score"  json:"evidence_score"`
	FreshnessScore float64 `yaml:"freshness_score" json:"freshness_score"`
}

// Validate checks the snapshot before aggregation.
func (c WorkspaceCounts) Validate() error {
	counts := map[string]int{
		"evidence_total":       c.EvidenceTotal,
		"evidence_current":     c.EvidenceCurrent,
		"evidence_expiring":    c.EvidenceExpiring,
		"evidence_expired":     c.EvidenceExpired,
		"obligations_total":    c.ObligationsTotal,
		"obligations_overdue":  c.ObligationsOverdue,
		"obligations_upcoming": c.ObligationsUpcoming,
		"checklist_total":      c.ChecklistTotal,
		"checklist_completed":  c.ChecklistCompleted,
	}
	for field, n := range counts {
		if n < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeCount, field)
		}
	}

	if c.ChecklistCompleted > c.ChecklistTotal {
		return fmt.Errorf("%w: checklist_completed %d > checklist_total %d",
			ErrCountExceedsTotal, c.ChecklistCompleted, c.ChecklistTotal)
	}
	if c.ObligationsOverdue > c.ObligationsTotal {
		return fmt.Errorf("%w: obligations_overdue %d > obligations_total %d",
			ErrCountExceedsTotal, c.ObligationsOverdue, c.ObligationsTotal)
	}

	for field, s := range map[string]float64{
		"evidence_score":  c.EvidenceScore,
		"freshness_score": c.FreshnessScore,
	} {
		if math.IsInf(s, 0) || math.IsNaN(s) || s < minSubScore || s > maxSubScore {
			return fmt.Errorf("%w: %s = %v", ErrSubScoreOutOfRange, field, s)
		}
	}

	return nil
}

// Score is the per-workspace readiness aggregate. All five values lie in
// [0,100].
type Score struct {
	EvidenceScore    int `json:"evidence_score"`
	FreshnessScore   int `json:"freshness_score"`
	ChecklistScore   int `json:"checklist_score"`
	ObligationsScore int `json:"obligations_score"`
	OverallScore     int `json:"overall_score"`
}

// Aggregate recomputes the readiness score from a consistent snapshot of
// workspace counts. An empty checklist or obligation list is vacuously
// complete and scores 100, so workspaces without assigned work are not
// punished for it.
func Aggregate(counts WorkspaceCounts) (Score, error) {
	if err := counts.Validate(); err != nil {
		return Score{}, err
	}

	// Each sub-score is rounded once before weighting, so the published
	// sub-scores and the overall score never disagree about their inputs.
	evidence := int(math.Round(counts.EvidenceScore))
	freshness := int(math.Round(counts.FreshnessScore))
	checklist := int(math.Round(ratioScore(counts.ChecklistCompleted, counts.ChecklistTotal)))
	obligations := int(math.Round(ratioScore(counts.ObligationsTotal-counts.ObligationsOverdue, counts.ObligationsTotal)))

	overall := WeightEvidence*float64(evidence) +
		WeightFreshness*float64(freshness) +
		WeightChecklist*float64(checklist) +
		WeightObligations*float64(obligations)

	return Score{
		EvidenceScore:    evidence,
		FreshnessScore:   freshness,
		ChecklistScore:   checklist,
		ObligationsScore: obligations,
		OverallScore:     clamp(int(math.Round(overall))),
	}, nil
}

// ratioScore scales completed/total onto [0,100], treating an empty
// collection as fully complete.
func ratioScore(completed, total int) float64 {
	if total == 0 {
		return maxSubScore
	}
	return maxSubScore * float64(completed) / float64(total)
}

func clamp(score int) int {
	if score < minSubScore {
		return minSubScore
	}
	if score > maxSubScore {
		return maxSubScore
	}
	return score
}
