package validation

import (
	"github.com/cartavis/carta-go/core/units"
)

// Formats attached to string schemas so that schema validators can apply
// the same grammars as the descriptors.
const (
	FormatAngularSize     = "angular-size"
	FormatWorldCoordinate = "world-coordinate"
	FormatPixelValue      = "pixel-value"
	FormatColorTuple      = "html-color-tuple"
)

// sizeString accepts angular size and pixel strings.
type sizeString struct{}

func (sizeString) Validate(value any, _ Receiver) error {
	s, ok := asString(value)
	if !ok {
		return shapeError("%s has type %s but a string was expected.", formatValue(value), typeName(value))
	}
	if units.ValidAngularSize(s) || units.ValidPixelValue(s) {
		return nil
	}
	return rangeError("%s is not an angular size.", s)
}

func (sizeString) Description() string {
	return "a numeric string with valid size units"
}

func (sizeString) JSONSchema() map[string]any {
	return map[string]any{"type": "string", "format": FormatAngularSize}
}

// NewSize returns a descriptor for a size: a number, which is taken to be
// pixels, or a string with angular or pixel units.
func NewSize() *Union {
	return NewUnion(NewNumber(), sizeString{}).
		Described("a number or a numeric string with valid size units")
}

// coordinateString accepts world coordinate and pixel strings. When axis is
// set the coordinate must also lie within the range for that axis.
type coordinateString struct {
	axis units.SpatialAxis
}

func (p coordinateString) Validate(value any, _ Receiver) error {
	s, ok := asString(value)
	if !ok {
		return shapeError("%s has type %s but a string was expected.", formatValue(value), typeName(value))
	}
	if units.ValidPixelValue(s) {
		return nil
	}
	if p.axis == "" {
		if units.ValidWorldCoordinate(s) {
			return nil
		}
		return rangeError("%s is not a world coordinate.", s)
	}
	if _, err := units.ParseWorldCoordinate(s, p.axis); err != nil {
		return &Error{Kind: KindRange, Message: err.Error(), cause: err}
	}
	return nil
}

func (p coordinateString) Description() string {
	return "a string in H:M:S or D:M:S format, or a numeric string with degree units or pixel units"
}

func (p coordinateString) JSONSchema() map[string]any {
	return map[string]any{"type": "string", "format": FormatWorldCoordinate}
}

const coordinateDescription = "a number, a string in H:M:S or D:M:S format, or a numeric string with degree units or pixel units"

// NewCoordinate returns a descriptor for a coordinate: a number, which is
// taken to be pixels, or a world coordinate or pixel string. Strings are
// checked for syntax only.
func NewCoordinate() *Union {
	return NewUnion(NewNumber(), coordinateString{}).Described(coordinateDescription)
}

// NewAxisCoordinate is like NewCoordinate but also rejects world
// coordinates outside the range permitted for axis.
func NewAxisCoordinate(axis units.SpatialAxis) *Union {
	return NewUnion(NewNumber(), coordinateString{axis: axis}).Described(coordinateDescription)
}
