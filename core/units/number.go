package units

import (
	"strconv"
)

// numberPattern matches the numeric part of every size and degree string.
// Exponent notation is deliberately not accepted.
const numberPattern = `-?\d+(?:\.\d+)?`

// significantDigits bounds output precision so that float artefacts from unit
// scaling (0.1 * 1e-3) do not leak into canonical strings.
const significantDigits = 12

// formatNumber renders v in plain decimal notation without insignificant
// trailing zeros. The result always matches numberPattern, so formatted
// values parse back to the same magnitude.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', significantDigits, 64), 64)
	if err == nil {
		v = rounded
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
