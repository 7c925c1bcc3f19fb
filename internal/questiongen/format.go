package questiongen

import (
	"math"
	"strconv"
	"strings"
)

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// formatValue renders a float the way a worksheet would: no exponent,
// no trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatValues joins values with ", ".
func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ", ")
}

// joinPlus joins values with " + " for worked-solution sums.
func joinPlus(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, " + ")
}

// withUnit attaches a display unit to a rendered number. Prefix units
// ("$") abut the number; suffix units are space-separated.
func withUnit(number, unit string, prefix bool) string {
	if unit == "" {
		return number
	}
	if prefix {
		return unit + number
	}
	return number + " " + unit
}

// ordinal renders n as "1st", "2nd", "3rd", "4th", ...
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
