package equivalency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromKg(t *testing.T) {
	tests := []struct {
		name        string
		kg          float64
		wantMiles   float64
		wantPhones  float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:       "150kg reference value",
			kg:         150.0,
			wantMiles:  781.25,    // 150 / 0.192
			wantPhones: 18248.175, // 150 / 0.00822
		},
		{
			name:       "exactly at threshold",
			kg:         1.0,
			wantMiles:  5.2083333,
			wantPhones: 121.654501,
		},
		{
			name:        "below threshold returns empty",
			kg:          0.5,
			wantIsEmpty: true,
		},
		{
			name:        "zero returns empty",
			kg:          0,
			wantIsEmpty: true,
		},
		{
			name:    "negative value returns error",
			kg:      -10,
			wantErr: ErrNegativeValue,
		},
		{
			name:    "NaN returns error",
			kg:      math.NaN(),
			wantErr: ErrCalculationOverflow,
		},
		{
			name:    "infinity returns error",
			kg:      math.Inf(1),
			wantErr: ErrCalculationOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromKg(tt.kg)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty)
				return
			}

			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, got.IsEmpty)
				assert.Empty(t, got.Results)
				return
			}

			assert.False(t, got.IsEmpty)
			require.Len(t, got.Results, 4)
			assert.Equal(t, KindMilesDriven, got.Results[0].Kind)
			assert.InDelta(t, tt.wantMiles, got.Results[0].Value, 1e-3)
			assert.Equal(t, KindSmartphonesCharged, got.Results[1].Kind)
			assert.InDelta(t, tt.wantPhones, got.Results[1].Value, 1e-3)
			assert.Contains(t, got.DisplayText, "Equivalent to driving")
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "18,248", FormatNumber(18248))
	assert.Equal(t, "42", FormatNumber(42))
	assert.Equal(t, "1,000,000", FormatNumber(1000000))
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "~1.5 billion", FormatLarge(1_500_000_000))
	assert.Equal(t, "~5.2 million", FormatLarge(5_200_000))
	assert.Equal(t, "999,999", FormatLarge(999_999.4))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "MilesDriven", KindMilesDriven.String())
	assert.Equal(t, "TreeSeedlings", KindTreeSeedlings.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
