package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a finite float64.
// Surrounding spaces are ignored; NaN and infinities are rejected.
func ToFloat64WithError(str string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: str, Err: strconv.ErrRange}
	}
	return f, nil
}
