package reporting

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Round rounds v to the given number of decimal places. The exact binary
// value is rounded and exact ties go to the even digit, so 2.675 (stored
// as 2.67499...) rounds to 2.67. Non-finite values are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return rounded(v, places).InexactFloat64()
}

// Percent converts a fraction to a percentage rounded to places. The
// fraction is scaled in float64 before rounding.
func Percent(fraction float64, places int32) float64 {
	return Round(fraction*100, places)
}

// FormatNumber renders a rounded value for console output.
func FormatNumber(v float64, places int32) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return rounded(v, places).String()
}

// rounded requires a finite v.
func rounded(v float64, places int32) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', int(places), 64))
}
