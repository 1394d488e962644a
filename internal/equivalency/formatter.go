package equivalency

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display scaling thresholds.
const (
	// LargeNumberThreshold is where abbreviated "~X.X million" display starts.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is where billion-scale display starts.
	BillionThreshold = 1_000_000_000
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across machines.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatLarge formats large values with abbreviated notation: plain
// comma-separated below one million, "~X.X million" and "~X.X billion"
// above.
func FormatLarge(v float64) string {
	if v >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", v/BillionThreshold)
	}
	if v >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", v/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(v)))
}

// formatValue renders an equivalency value for display.
func formatValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
