package experience

import (
	"fmt"
	"math"
)

// FormatYears renders a fractional year count as a human-readable duration,
// e.g. 2.5 becomes "2 years 6 months".
func FormatYears(years float64) string {
	if years <= 0 {
		return "Less than a month"
	}

	whole := int(math.Floor(years))
	months := int(math.Round((years - float64(whole)) * 12))
	if months == 12 {
		whole++
		months = 0
	}
	if whole == 0 && months == 0 {
		return "Less than a month"
	}

	switch {
	case whole == 0:
		return plural(months, "month")
	case months == 0:
		return plural(whole, "year")
	default:
		return plural(whole, "year") + " " + plural(months, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
