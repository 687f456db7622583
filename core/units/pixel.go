package units

import (
	"fmt"
	"regexp"
)

// PixelTokens are the unit tokens accepted after a pixel count.
var PixelTokens = []string{"px", "pix", "pixel", "pixels"}

var pixelRe = regexp.MustCompile(`(?i)^(` + numberPattern + `)\s*(` + alternation(PixelTokens) + `)$`)

// PixelValue is a size or coordinate in image pixels. Pixels are kept out
// of the angular registry because they have no fixed arcsecond scale.
type PixelValue struct {
	Value float64
}

// ValidPixelValue reports whether value is a number with a pixel unit.
func ValidPixelValue(value string) bool {
	return pixelRe.MatchString(value)
}

// ParsePixelValue parses strings such as "123px" or "12.5 pixels".
func ParsePixelValue(value string) (PixelValue, error) {
	m := pixelRe.FindStringSubmatch(value)
	if m == nil {
		return PixelValue{}, &ParseError{
			Value: value,
			Err:   ErrUnrecognizedFormat,
			Msg:   fmt.Sprintf("%q is not in a recognized pixel format", value),
		}
	}
	v, err := parseFloat(m[1])
	if err != nil {
		return PixelValue{}, &ParseError{Value: value, Err: ErrUnrecognizedFormat, Msg: err.Error()}
	}
	return PixelValue{Value: v}, nil
}

// String returns the canonical form, for example 123px.
func (p PixelValue) String() string {
	return formatNumber(p.Value) + "px"
}
