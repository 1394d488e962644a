package footprint

import (
	"fmt"
	"math"
)

// EmissionFactor converts an activity quantity into kg CO2e. Factors are
// immutable once loaded; multiple dataset years may coexist in separate
// tables but only one table is active per calculation.
type EmissionFactor struct {
	// Kind is the activity this factor prices.
	Kind ActivityKind `yaml:"kind" json:"kind"`

	// Scope is the reporting scope the activity belongs to. It must agree
	// with the kind's scope in the closed enumeration.
	Scope Scope `yaml:"scope" json:"scope"`

	// CoefficientKgPerUnit is kg CO2e emitted per unit of activity.
	CoefficientKgPerUnit float64 `yaml:"coefficient_kg_per_unit" json:"coefficient_kg_per_unit"`

	// Unit is the activity's measurement unit (kWh, litres, km, ...).
	Unit string `yaml:"unit" json:"unit"`

	// DatasetYear is the publication year of the conversion dataset.
	DatasetYear int `yaml:"dataset_year" json:"dataset_year"`
}

// Validate checks a single factor against the closed activity enumeration.
func (f EmissionFactor) Validate() error {
	scope, ok := ScopeOf(f.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActivityKind, f.Kind)
	}
	if f.Scope != scope {
		return fmt.Errorf("%w: %s declared %s, expected %s", ErrScopeMismatch, f.Kind, f.Scope, scope)
	}
	if f.CoefficientKgPerUnit < 0 || math.IsInf(f.CoefficientKgPerUnit, 0) || math.IsNaN(f.CoefficientKgPerUnit) {
		return fmt.Errorf("%w: %s", ErrInvalidCoefficient, f.Kind)
	}
	return nil
}

// FactorTable is a read-only mapping from activity kind to emission
// factor for one dataset year. Construct with NewFactorTable; the zero
// value resolves nothing.
type FactorTable struct {
	datasetYear int
	version     string
	byKind      map[ActivityKind]EmissionFactor
}

// NewFactorTable validates the given factors and builds an immutable
// lookup table. Every factor must pass Validate and each activity kind
// may appear at most once.
func NewFactorTable(datasetYear int, version string, factors []EmissionFactor) (*FactorTable, error) {
	byKind := make(map[ActivityKind]EmissionFactor, len(factors))
	for _, f := range factors {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byKind[f.Kind]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFactor, f.Kind)
		}
		byKind[f.Kind] = f
	}

	return &FactorTable{
		datasetYear: datasetYear,
		version:     version,
		byKind:      byKind,
	}, nil
}

// DatasetYear returns the publication year of the underlying dataset.
func (t *FactorTable) DatasetYear() int { return t.datasetYear }

// Version returns the dataset version string.
func (t *FactorTable) Version() string { return t.version }

// Len returns the number of factors in the table.
func (t *FactorTable) Len() int { return len(t.byKind) }

// Lookup returns the factor for kind, or false if the table has no entry.
func (t *FactorTable) Lookup(kind ActivityKind) (EmissionFactor, bool) {
	f, ok := t.byKind[kind]
	return f, ok
}

// Factors returns every factor in fixed enumeration order.
func (t *FactorTable) Factors() []EmissionFactor {
	factors := make([]EmissionFactor, 0, len(t.byKind))
	for _, kind := range AllKinds() {
		if f, ok := t.byKind[kind]; ok {
			factors = append(factors, f)
		}
	}
	return factors
}
