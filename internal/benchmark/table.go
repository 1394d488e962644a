package benchmark

import (
	"fmt"
	"strings"
)

// Table holds one active benchmark per business type. Construct with
// NewTable; lookups are case-insensitive on business type.
type Table struct {
	byType map[string]SectorBenchmark
}

// NewTable validates the given benchmarks and builds an immutable lookup
// table. A business type may appear at most once.
func NewTable(benchmarks []SectorBenchmark) (*Table, error) {
	byType := make(map[string]SectorBenchmark, len(benchmarks))
	for _, b := range benchmarks {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("benchmark %q: %w", b.BusinessType, err)
		}
		key := normalizeType(b.BusinessType)
		if _, exists := byType[key]; exists {
			return nil, fmt.Errorf("duplicate benchmark for business type %q", b.BusinessType)
		}
		byType[key] = b
	}
	return &Table{byType: byType}, nil
}

// Lookup returns the active benchmark for the given business type.
// Missing entries are a catalog gap (ErrBenchmarkNotFound), signaled
// distinctly from invalid input so callers can fall back.
func (t *Table) Lookup(businessType string) (SectorBenchmark, error) {
	b, ok := t.byType[normalizeType(businessType)]
	if !ok {
		return SectorBenchmark{}, fmt.Errorf("%w: %q", ErrBenchmarkNotFound, businessType)
	}
	return b, nil
}

// Len returns the number of benchmarks in the table.
func (t *Table) Len() int { return len(t.byType) }

func normalizeType(businessType string) string {
	return strings.ToLower(strings.TrimSpace(businessType))
}
