// Package equivalency converts carbon footprint values (kg CO2e) into
// relatable real-world equivalencies like "miles driven" or "smartphones
// charged" using EPA-published conversion factors.
package equivalency

import (
	"fmt"
	"math"
)

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each constant is the kg CO2e equivalent of one unit of the activity;
// the equivalency is kg_CO2e / factor.
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone full charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeDayFactor is kg CO2e per day of average home electricity use.
	EPAHomeDayFactor = 18.3
)

// MinEquivalencyThresholdKg is the smallest footprint worth expressing
// as equivalencies. Below it the numbers are meaninglessly small and the
// raw value is shown instead.
const MinEquivalencyThresholdKg = 1.0

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Equivalency calculation errors.
var (
	// ErrNegativeValue indicates a negative carbon value.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow indicates a value too large to calculate safely.
	ErrCalculationOverflow = constError("calculation overflow")
)

// Kind identifies one equivalency category.
type Kind int

// Equivalency categories, in display priority order.
const (
	KindMilesDriven Kind = iota
	KindSmartphonesCharged
	KindTreeSeedlings
	KindHomeDays
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindMilesDriven:
		return "MilesDriven"
	case KindSmartphonesCharged:
		return "SmartphonesCharged"
	case KindTreeSeedlings:
		return "TreeSeedlings"
	case KindHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is a single calculated equivalency.
type Result struct {
	Kind           Kind    `json:"kind"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
	Label          string  `json:"label"`
}

// Output contains all equivalency results for one footprint.
type Output struct {
	// InputKg is the footprint value the equivalencies were derived from.
	InputKg float64 `json:"input_kg"`

	// Results lists the calculated equivalencies in priority order.
	Results []Result `json:"results"`

	// DisplayText is the full prose form, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	DisplayText string `json:"display_text"`

	// IsEmpty is true when the input was below the display threshold.
	IsEmpty bool `json:"is_empty"`
}

// FromKg computes equivalencies for a footprint expressed in kg CO2e.
//
// Returns an empty Output without error for values below
// MinEquivalencyThresholdKg. Returns ErrNegativeValue for negative
// inputs and ErrCalculationOverflow for NaN or infinite inputs.
func FromKg(kg float64) (Output, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return Output{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Output{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return Output{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	seedlings := kg / EPATreeSeedlingFactor
	homeDays := kg / EPAHomeDayFactor

	results := []Result{
		{Kind: KindMilesDriven, Value: miles, FormattedValue: formatValue(miles), Label: "miles driven"},
		{Kind: KindSmartphonesCharged, Value: phones, FormattedValue: formatValue(phones), Label: "smartphones charged"},
		{Kind: KindTreeSeedlings, Value: seedlings, FormattedValue: formatValue(seedlings), Label: "tree seedlings grown for 10 years"},
		{Kind: KindHomeDays, Value: homeDays, FormattedValue: formatValue(homeDays), Label: "days of home electricity use"},
	}

	displayText := fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
		results[0].FormattedValue, results[1].FormattedValue)

	return Output{
		InputKg:     kg,
		Results:     results,
		DisplayText: displayText,
	}, nil
}
