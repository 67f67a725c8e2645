package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatUSD renders a per-trip dollar amount with cents.
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatUSDWhole renders a monthly aggregate as whole, comma-grouped
// dollars. Aggregates stay unrounded internally; display is rounded.
func FormatUSDWhole(v float64) string {
	return "$" + humanize.Commaf(math.Round(v))
}

// FormatRate renders a dollars-per-unit rate, e.g. "$0.60/min".
func FormatRate(v float64, unit string) string {
	return fmt.Sprintf("$%.2f/%s", v, unit)
}

// FormatMiles renders a distance with a single decimal.
func FormatMiles(v float64) string {
	return fmt.Sprintf("%.1f mi", v)
}

// FormatMinutes renders a minute count with a single decimal.
func FormatMinutes(v float64) string {
	return fmt.Sprintf("%.1f min", v)
}
