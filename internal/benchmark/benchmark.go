// Package benchmark maps a footprint's per-employee intensity against a
// sector benchmark, producing a three-tier category and a bounded 0-100
// score.
package benchmark

import (
	"fmt"
	"math"
)

// Category is the three-tier rating derived from comparing an intensity
// to a benchmark. It is never stored apart from the benchmark that
// produced it.
type Category string

// Rating tiers, ordered best first.
const (
	CategoryGood             Category = "good"
	CategoryAverage          Category = "average"
	CategoryNeedsImprovement Category = "needs_improvement"
)

// String returns the category's wire value.
func (c Category) String() string { return string(c) }

// Score breakpoints. The benchmark only supplies thresholds; these
// anchor values are fixed constants of the design.
const (
	// ScoreCeiling is awarded at or below the good threshold. Going
	// further below grants no extra credit.
	ScoreCeiling = 100.0

	// ScoreMidpoint is the score at exactly the average threshold.
	ScoreMidpoint = 50.0

	// ScoreFloor is reached at twice the average threshold and beyond.
	ScoreFloor = 0.0

	// floorMultiple is the multiple of the average threshold at which
	// the score bottoms out.
	floorMultiple = 2.0
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Benchmark validation and lookup errors.
var (
	// ErrInvalidThresholds indicates a benchmark whose good threshold is
	// not strictly below its average threshold.
	ErrInvalidThresholds = constError("good threshold must be below average threshold")

	// ErrNonFiniteIntensity indicates a NaN or infinite intensity value.
	ErrNonFiniteIntensity = constError("intensity must be finite")

	// ErrNegativeIntensity indicates a negative intensity value.
	ErrNegativeIntensity = constError("intensity cannot be negative")

	// ErrBenchmarkNotFound indicates no benchmark exists for a declared
	// business type. This is a catalog gap, not a user mistake; callers
	// are expected to fall back rather than block.
	ErrBenchmarkNotFound = constError("no benchmark for business type")
)

// SectorBenchmark is a per-sector reference pair of emission-intensity
// thresholds, in kg CO2e per employee per year.
type SectorBenchmark struct {
	BusinessType         string  `yaml:"business_type"             json:"business_type"`
	EmployeeRange        string  `yaml:"employee_range,omitempty"  json:"employee_range,omitempty"`
	AvgKgCO2ePerEmployee float64 `yaml:"avg_kg_co2e_per_employee"  json:"avg_kg_co2e_per_employee"`
	GoodThresholdKg      float64 `yaml:"good_threshold_kg"         json:"good_threshold_kg"`
	AverageThresholdKg   float64 `yaml:"average_threshold_kg"      json:"average_threshold_kg"`
}

// Validate checks the benchmark's threshold invariant.
func (b SectorBenchmark) Validate() error {
	if b.GoodThresholdKg < 0 || math.IsInf(b.GoodThresholdKg, 0) || math.IsNaN(b.GoodThresholdKg) {
		return fmt.Errorf("%w: good threshold %v", ErrInvalidThresholds, b.GoodThresholdKg)
	}
	if b.GoodThresholdKg >= b.AverageThresholdKg {
		return fmt.Errorf("%w: good %v, average %v",
			ErrInvalidThresholds, b.GoodThresholdKg, b.AverageThresholdKg)
	}
	return nil
}

// Categorize places an intensity into one of the three tiers. Both band
// boundaries are inclusive on the lower band, so a value sitting exactly
// on a threshold falls into the better tier.
func Categorize(intensity float64, b SectorBenchmark) (Category, error) {
	if err := validateIntensity(intensity, b); err != nil {
		return "", err
	}

	switch {
	case intensity <= b.GoodThresholdKg:
		return CategoryGood, nil
	case intensity <= b.AverageThresholdKg:
		return CategoryAverage, nil
	default:
		return CategoryNeedsImprovement, nil
	}
}

// Score maps an intensity onto [0,100] with a three-segment
// piecewise-linear curve: ScoreCeiling at or below the good threshold,
// falling to ScoreMidpoint at the average threshold, then to ScoreFloor
// at twice the average threshold. Rounding to the nearest integer happens
// once, at the end.
func Score(intensity float64, b SectorBenchmark) (int, error) {
	if err := validateIntensity(intensity, b); err != nil {
		return 0, err
	}

	floorAt := floorMultiple * b.AverageThresholdKg

	var raw float64
	switch {
	case intensity <= b.GoodThresholdKg:
		raw = ScoreCeiling
	case intensity <= b.AverageThresholdKg:
		span := b.AverageThresholdKg - b.GoodThresholdKg
		raw = ScoreCeiling - (intensity-b.GoodThresholdKg)/span*(ScoreCeiling-ScoreMidpoint)
	case intensity < floorAt:
		span := floorAt - b.AverageThresholdKg
		raw = ScoreMidpoint - (intensity-b.AverageThresholdKg)/span*(ScoreMidpoint-ScoreFloor)
	default:
		raw = ScoreFloor
	}

	return int(math.Round(raw)), nil
}

// Evaluate returns category and score together; most callers want both.
func Evaluate(intensity float64, b SectorBenchmark) (Category, int, error) {
	category, err := Categorize(intensity, b)
	if err != nil {
		return "", 0, err
	}
	score, err := Score(intensity, b)
	if err != nil {
		return "", 0, err
	}
	return category, score, nil
}

func validateIntensity(intensity float64, b SectorBenchmark) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if math.IsInf(intensity, 0) || math.IsNaN(intensity) {
		return ErrNonFiniteIntensity
	}
	if intensity < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeIntensity, intensity)
	}
	return nil
}
