package units

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cartavis/carta-go/core/invariant"
)

// WorldCoordinate is a parsed world coordinate in one of the supported
// notations.
type WorldCoordinate interface {
	fmt.Stringer
	Format() NumberFormat
}

// DegreesCoordinate is a coordinate in decimal degrees.
type DegreesCoordinate struct {
	Degrees float64
}

// Format returns FormatDegrees
func (c DegreesCoordinate) Format() NumberFormat { return FormatDegrees }

// String returns the decimal value without a unit, for example 123.5.
func (c DegreesCoordinate) String() string {
	return formatNumber(c.Degrees)
}

// SexagesimalCoordinate is a coordinate written as three components: hours
// or degrees, minutes and seconds.
type SexagesimalCoordinate struct {
	Notation NumberFormat // FormatHMS or FormatDMS
	Major    float64      // Hours for HMS, degrees for DMS
	Minutes  float64
	Seconds  float64
}

// Format returns the sexagesimal notation of the coordinate
func (c SexagesimalCoordinate) Format() NumberFormat { return c.Notation }

// Tuple returns the three components in order.
func (c SexagesimalCoordinate) Tuple() (major, minutes, seconds float64) {
	return c.Major, c.Minutes, c.Seconds
}

// secondsPlaces is the number of decimal places kept when formatting
// seconds.
const secondsPlaces = 9

// String returns the colon form with two-digit minutes and seconds, for
// example 12:05:09.5. Seconds are rounded to nine decimal places and carried
// into minutes and the major component, so 59.9999999999s becomes a whole
// minute. A full turn (24h or 360d) wraps to zero. A negative zero major
// component keeps its sign.
func (c SexagesimalCoordinate) String() string {
	scale := math.Pow10(secondsPlaces)
	seconds := math.Round(c.Seconds*scale) / scale
	minutes := c.Minutes
	major := c.Major
	if seconds >= 60 {
		seconds -= 60
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		major = math.Copysign(math.Abs(major)+1, major)
	}
	if (c.Notation == FormatHMS && major == 24) || (c.Notation == FormatDMS && major == 360) {
		major = 0
	}

	whole, fraction, _ := strings.Cut(strconv.FormatFloat(seconds, 'f', -1, 64), ".")
	if len(whole) < 2 {
		whole = "0" + whole
	}
	if fraction != "" {
		fraction = "." + fraction
	}
	return fmt.Sprintf("%s:%02.0f:%s%s",
		strconv.FormatFloat(major, 'f', -1, 64), minutes, whole, fraction)
}

// Notation parses one world coordinate notation.
type Notation struct {
	Format NumberFormat
	Name   string

	patterns []*regexp.Regexp
	build    func(n *Notation, value string, m []string, axis SpatialAxis) (WorldCoordinate, error)
}

var (
	DegreesNotation = &Notation{
		Format: FormatDegrees,
		Name:   "degrees",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(` + numberPattern + `)$`),
			regexp.MustCompile(`(?i)^(` + numberPattern + `)\s*(?:` + alternation(Degrees.Tokens) + `)$`),
		},
		build: buildDegrees,
	}

	HMSNotation = &Notation{
		Format: FormatHMS,
		Name:   "H:M:S",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(-?(?:\d|[01]\d|2[0-3]))?:([0-5]?\d)?:([0-5]?\d(?:\.\d+)?)?$`),
			regexp.MustCompile(`(?i)^(?:(-?(?:\d|[01]\d|2[0-3]))h)?(?:([0-5]?\d)m)?(?:([0-5]?\d(?:\.\d+)?)s)?$`),
		},
		build: buildHMS,
	}

	DMSNotation = &Notation{
		Format: FormatDMS,
		Name:   "D:M:S",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(-?\d+)?:([0-5]?\d)?:([0-5]?\d(?:\.\d+)?)?$`),
			regexp.MustCompile(`(?i)^(?:(-?\d+)d)?(?:([0-5]?\d)m)?(?:([0-5]?\d(?:\.\d+)?)s)?$`),
		},
		build: buildDMS,
	}
)

// notations is the registry in dispatch order.
var notations = []*Notation{DegreesNotation, HMSNotation, DMSNotation}

func init() {
	seen := make(map[NumberFormat]bool, len(notations))
	for _, n := range notations {
		invariant.Invariant(!seen[n.Format], "notation %q registered twice", n.Format)
		seen[n.Format] = true
	}
}

// Notations returns the registered notations in dispatch order.
func Notations() []*Notation {
	return append([]*Notation(nil), notations...)
}

// NotationFor returns the notation registered for format.
func NotationFor(format NumberFormat) (*Notation, error) {
	for _, n := range notations {
		if n.Format == format {
			return n, nil
		}
	}
	return nil, fmt.Errorf("no coordinate notation registered for number format %q", format)
}

// Valid reports whether value is syntactically in this notation. Ranges are
// not checked.
func (n *Notation) Valid(value string) bool {
	return n.match(value) != nil
}

// Parse parses value in this notation and checks the range permitted for
// axis.
func (n *Notation) Parse(value string, axis SpatialAxis) (WorldCoordinate, error) {
	m := n.match(value)
	if m == nil {
		return nil, &ParseError{
			Value: value,
			Err:   ErrUnrecognizedFormat,
			Msg:   fmt.Sprintf("%q is not in %s format", value, n.Name),
		}
	}
	return n.build(n, value, m, axis)
}

func (n *Notation) match(value string) []string {
	for _, re := range n.patterns {
		if m := re.FindStringSubmatch(value); m != nil {
			return m
		}
	}
	return nil
}

// ValidWorldCoordinate reports whether value is syntactically valid in any
// registered notation.
func ValidWorldCoordinate(value string) bool {
	for _, n := range notations {
		if n.Valid(value) {
			return true
		}
	}
	return false
}

// ParseWorldCoordinate tries each notation in turn and returns the first
// successful parse. When some notation recognizes the syntax but rejects the
// range, that range error is returned.
func ParseWorldCoordinate(value string, axis SpatialAxis) (WorldCoordinate, error) {
	var rangeErr error
	for _, n := range notations {
		c, err := n.Parse(value, axis)
		if err == nil {
			return c, nil
		}
		if rangeErr == nil && errors.Is(err, ErrOutOfRange) {
			rangeErr = err
		}
	}
	if rangeErr != nil {
		return nil, rangeErr
	}
	return nil, &ParseError{
		Value: value,
		Err:   ErrUnrecognizedFormat,
		Msg:   fmt.Sprintf("%q is not in a recognized world coordinate format", value),
	}
}

func outOfRange(value string, format string, args ...any) *ParseError {
	return &ParseError{
		Value: value,
		Err:   ErrOutOfRange,
		Msg:   fmt.Sprintf("%q is out of range: ", value) + fmt.Sprintf(format, args...),
	}
}

func component(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	invariant.ExpectNoError(err, "regexp-validated coordinate component")
	return v
}

func buildDegrees(n *Notation, value string, m []string, axis SpatialAxis) (WorldCoordinate, error) {
	deg := component(m[1])
	switch axis {
	case AxisX:
		if deg < 0 || deg >= 360 {
			return nil, outOfRange(value, "x coordinate must be at least 0 and less than 360 degrees")
		}
	case AxisY:
		if deg < -90 || deg > 90 {
			return nil, outOfRange(value, "y coordinate must be between -90 and 90 degrees")
		}
	}
	return DegreesCoordinate{Degrees: deg}, nil
}

func buildHMS(n *Notation, value string, m []string, axis SpatialAxis) (WorldCoordinate, error) {
	c := SexagesimalCoordinate{Notation: FormatHMS, Major: component(m[1]), Minutes: component(m[2]), Seconds: component(m[3])}
	switch axis {
	case AxisX:
		if c.Major < 0 || c.Major >= 24 {
			return nil, outOfRange(value, "x coordinate hours must be at least 0 and less than 24")
		}
	case AxisY:
		if exceedsLimit(c, 6) {
			return nil, outOfRange(value, "y coordinate must be between -6 and 6 hours")
		}
	}
	return c, nil
}

func buildDMS(n *Notation, value string, m []string, axis SpatialAxis) (WorldCoordinate, error) {
	c := SexagesimalCoordinate{Notation: FormatDMS, Major: component(m[1]), Minutes: component(m[2]), Seconds: component(m[3])}
	switch axis {
	case AxisX:
		if c.Major < 0 || c.Major >= 360 {
			return nil, outOfRange(value, "x coordinate degrees must be at least 0 and less than 360")
		}
	case AxisY:
		if exceedsLimit(c, 90) {
			return nil, outOfRange(value, "y coordinate must be between -90 and 90 degrees")
		}
	}
	return c, nil
}

// exceedsLimit reports whether a sexagesimal value lies outside
// [-limit, limit]. At exactly ±limit the minutes and seconds must be zero.
func exceedsLimit(c SexagesimalCoordinate, limit float64) bool {
	if c.Major < -limit || c.Major > limit {
		return true
	}
	return math.Abs(c.Major) == limit && (c.Minutes != 0 || c.Seconds != 0)
}
