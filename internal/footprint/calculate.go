package footprint

import (
	"errors"
	"fmt"
)

// KgPerTonne converts kilograms to metric tonnes.
const KgPerTonne = 1000.0

// BreakdownLine is one activity's contribution to the footprint:
// quantity × coefficient, both non-negative.
type BreakdownLine struct {
	Kind                 ActivityKind `json:"kind"`
	Scope                Scope        `json:"scope"`
	Quantity             float64      `json:"quantity"`
	Unit                 string       `json:"unit"`
	CoefficientKgPerUnit float64      `json:"coefficient_kg_per_unit"`
	KgCO2e               float64      `json:"kg_co2e"`
}

// Footprint is the calculation engine's output. The three levels of
// detail are redundant on purpose: each breakdown line sums into its
// scope total and the scope totals sum into the grand total, which is
// the property the test suite verifies.
type Footprint struct {
	Scope1TotalKgCO2e float64 `json:"scope1_total_kg_co2e"`
	Scope2TotalKgCO2e float64 `json:"scope2_total_kg_co2e"`
	Scope3TotalKgCO2e float64 `json:"scope3_total_kg_co2e"`

	TotalKgCO2e     float64 `json:"total_kg_co2e"`
	TotalTonnesCO2e float64 `json:"total_tonnes_co2e"`

	// KgCO2ePerEmployee is the footprint's per-employee intensity, the
	// value benchmark scoring consumes.
	KgCO2ePerEmployee float64 `json:"kg_co2e_per_employee"`

	// KgCO2ePerSqm is present only when the inputs supplied a positive
	// floor area. Nil means "no data", which is distinct from zero.
	KgCO2ePerSqm *float64 `json:"kg_co2e_per_sqm,omitempty"`

	// Breakdown lists every nonzero activity line in fixed enumeration
	// order.
	Breakdown []BreakdownLine `json:"breakdown"`

	DatasetYear int `json:"dataset_year"`
}

// Calculate converts an activity-input bundle into a carbon footprint
// using the given factor table.
//
// The function is pure: identical inputs and table always produce the
// same footprint. Inputs are validated in full before any arithmetic, so
// a caller never receives a partially computed result. An activity kind
// the table cannot price yields a reference-gap error rather than a
// silently dropped addend.
func Calculate(inputs *ActivityInputs, table *FactorTable) (*Footprint, error) {
	if inputs == nil {
		return nil, errors.New("activity inputs cannot be nil")
	}
	if table == nil {
		return nil, errors.New("factor table cannot be nil")
	}
	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	fp := &Footprint{DatasetYear: table.DatasetYear()}

	// Addition only: no subtraction means no cancellation, so summing in
	// any order agrees within floating-point tolerance.
	for _, line := range inputs.lines() {
		if line.quantity == 0 {
			continue
		}

		factor, ok := table.Lookup(line.kind)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrFactorNotFound, line.kind)
		}

		kg := line.quantity * factor.CoefficientKgPerUnit
		fp.Breakdown = append(fp.Breakdown, BreakdownLine{
			Kind:                 line.kind,
			Scope:                factor.Scope,
			Quantity:             line.quantity,
			Unit:                 factor.Unit,
			CoefficientKgPerUnit: factor.CoefficientKgPerUnit,
			KgCO2e:               kg,
		})

		switch factor.Scope {
		case Scope1:
			fp.Scope1TotalKgCO2e += kg
		case Scope2:
			fp.Scope2TotalKgCO2e += kg
		case Scope3:
			fp.Scope3TotalKgCO2e += kg
		}
	}

	fp.TotalKgCO2e = fp.Scope1TotalKgCO2e + fp.Scope2TotalKgCO2e + fp.Scope3TotalKgCO2e
	fp.TotalTonnesCO2e = fp.TotalKgCO2e / KgPerTonne
	fp.KgCO2ePerEmployee = fp.TotalKgCO2e / float64(inputs.EmployeesCount)

	if inputs.FloorAreaSqm > 0 {
		perSqm := fp.TotalKgCO2e / inputs.FloorAreaSqm
		fp.KgCO2ePerSqm = &perSqm
	}

	return fp, nil
}
