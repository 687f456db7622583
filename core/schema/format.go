package schema

import (
	"github.com/cartavis/carta-go/core/units"
	"github.com/cartavis/carta-go/core/validation"
)

// Format is a string format that the Validator asserts in addition to the
// standard JSON Schema formats.
type Format string

const (
	FormatAngularSize     Format = validation.FormatAngularSize     // "2arcmin", "1.5 deg", or a pixel size
	FormatWorldCoordinate Format = validation.FormatWorldCoordinate // "12:34:56.7", "-5d30m0s", "10deg", or pixels
	FormatPixelValue      Format = validation.FormatPixelValue      // "123px"
	FormatColorTuple      Format = validation.FormatColorTuple      // "rgb(255, 0, 0)"
)

// Formats returns every custom format in a stable order.
func Formats() []Format {
	return []Format{FormatAngularSize, FormatWorldCoordinate, FormatPixelValue, FormatColorTuple}
}

// IsCartaFormat reports whether f is one of the custom formats.
func IsCartaFormat(f Format) bool {
	switch f {
	case FormatAngularSize, FormatWorldCoordinate, FormatPixelValue, FormatColorTuple:
		return true
	default:
		return false
	}
}

var colorTuple = validation.NewTupleColor()

// formatValidators returns the assertions for the custom formats. Each
// accepts exactly what the corresponding descriptor accepts.
func formatValidators() map[string]func(any) bool {
	return map[string]func(any) bool{
		string(FormatAngularSize): stringFormat(func(s string) bool {
			return units.ValidAngularSize(s) || units.ValidPixelValue(s)
		}),
		string(FormatWorldCoordinate): stringFormat(func(s string) bool {
			return units.ValidPixelValue(s) || units.ValidWorldCoordinate(s)
		}),
		string(FormatPixelValue): stringFormat(units.ValidPixelValue),
		string(FormatColorTuple): stringFormat(func(s string) bool {
			return colorTuple.Validate(s, nil) == nil
		}),
	}
}

func stringFormat(valid func(string) bool) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return true // type is checked separately
		}
		return valid(s)
	}
}
