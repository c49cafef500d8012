package common

import (
	"math"
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// UpperBoundTons extracts the numeric signal from a CO2 reduction string
// such as "2-4 tons/year". The last number is the upper bound of the range,
// which is the estimate used throughout scoring. Returns false when the
// string carries no number; callers choose their own default.
func UpperBoundTons(s string) (float64, bool) {
	matches := numberPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(matches[len(matches)-1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
