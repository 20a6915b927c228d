package normalize

import (
	"math"
	"strconv"
)

// coerceDecimal converts an upstream numeric-ish value (a JSON number or a
// quoted decimal string) to its canonical string form. ok is false for
// missing, non-numeric, or non-finite values.
func coerceDecimal(v any) (string, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", false
		}
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		// Keep the upstream string form so repeated normalization of the
		// same payload is byte-identical.
		return n, true
	default:
		return "", false
	}
}

// decimalOrZero coerces like coerceDecimal but defaults to "0" for values
// that cannot be represented.
func decimalOrZero(v any) string {
	if s, ok := coerceDecimal(v); ok {
		return s
	}
	return "0"
}

// coerceFloat converts an upstream numeric-ish value to a finite float64.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isZeroDecimal reports whether a coerced decimal string represents zero.
// Empty strings (omitted optional fields) count as zero.
func isZeroDecimal(s string) bool {
	if s == "" {
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == 0
}
