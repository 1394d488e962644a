package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactorTable(t *testing.T) {
	valid := EmissionFactor{
		Kind: ActivityElectricity, Scope: Scope2,
		CoefficientKgPerUnit: 0.233, Unit: "kWh", DatasetYear: 2024,
	}

	tests := []struct {
		name    string
		factors []EmissionFactor
		wantErr error
	}{
		{
			name:    "single valid factor",
			factors: []EmissionFactor{valid},
		},
		{
			name:    "empty table is valid",
			factors: nil,
		},
		{
			name: "unknown kind rejected",
			factors: []EmissionFactor{
				{Kind: "jet_fuel_gallons", Scope: Scope1, CoefficientKgPerUnit: 9.5, Unit: "gal"},
			},
			wantErr: ErrUnknownActivityKind,
		},
		{
			name: "scope mismatch rejected",
			factors: []EmissionFactor{
				{Kind: ActivityElectricity, Scope: Scope1, CoefficientKgPerUnit: 0.233, Unit: "kWh"},
			},
			wantErr: ErrScopeMismatch,
		},
		{
			name: "negative coefficient rejected",
			factors: []EmissionFactor{
				{Kind: ActivityDiesel, Scope: Scope1, CoefficientKgPerUnit: -2.5, Unit: "litres"},
			},
			wantErr: ErrInvalidCoefficient,
		},
		{
			name:    "duplicate kind rejected",
			factors: []EmissionFactor{valid, valid},
			wantErr: ErrDuplicateFactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewFactorTable(2024, "1.0.0", tt.factors)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsReferenceGap(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 2024, table.DatasetYear())
			assert.Equal(t, "1.0.0", table.Version())
			assert.Equal(t, len(tt.factors), table.Len())
		})
	}
}

func TestFactorTableLookup(t *testing.T) {
	table, err := NewFactorTable(2023, "2.1.0", []EmissionFactor{
		{Kind: ActivityNaturalGas, Scope: Scope1, CoefficientKgPerUnit: 0.182, Unit: "kWh", DatasetYear: 2023},
		{Kind: ActivityElectricity, Scope: Scope2, CoefficientKgPerUnit: 0.207, Unit: "kWh", DatasetYear: 2023},
	})
	require.NoError(t, err)

	got, ok := table.Lookup(ActivityElectricity)
	require.True(t, ok)
	assert.InDelta(t, 0.207, got.CoefficientKgPerUnit, 1e-12)

	_, ok = table.Lookup(ActivityFreightRoad)
	assert.False(t, ok)
}

func TestFactorTableFactorsOrder(t *testing.T) {
	// Declared out of enumeration order on purpose.
	table, err := NewFactorTable(2024, "1.0.0", []EmissionFactor{
		{Kind: ActivityWasteLandfill, Scope: Scope3, CoefficientKgPerUnit: 0.45, Unit: "kg"},
		{Kind: ActivityNaturalGas, Scope: Scope1, CoefficientKgPerUnit: 0.182, Unit: "kWh"},
		{Kind: ActivityElectricity, Scope: Scope2, CoefficientKgPerUnit: 0.233, Unit: "kWh"},
	})
	require.NoError(t, err)

	factors := table.Factors()
	require.Len(t, factors, 3)
	assert.Equal(t, ActivityNaturalGas, factors[0].Kind)
	assert.Equal(t, ActivityElectricity, factors[1].Kind)
	assert.Equal(t, ActivityWasteLandfill, factors[2].Kind)
}

func TestScopeOf(t *testing.T) {
	for _, kind := range AllKinds() {
		scope, ok := ScopeOf(kind)
		assert.True(t, ok, "kind %s", kind)
		assert.Contains(t, []Scope{Scope1, Scope2, Scope3}, scope)
	}

	_, ok := ScopeOf("unknown")
	assert.False(t, ok)
	assert.False(t, IsRecognizedKind("unknown"))
}
