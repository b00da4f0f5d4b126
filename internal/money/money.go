// Package money formats amounts for display. Amounts stay float64 everywhere
// else; only the presentation layer turns them into strings.
package money

import (
	"math"

	"github.com/dustin/go-humanize"
)

// USD formats an amount the way en-US renders dollars: $125,000.00.
func USD(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", math.Abs(amount))
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}
