package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cartavis/carta-go/core/invariant"
)

// Interval selects which bounds of a Number are inclusive.
type Interval uint8

const (
	Exclude    Interval = 0
	IncludeMin Interval = 1 << 0
	IncludeMax Interval = 1 << 1
	Include             = IncludeMin | IncludeMax
)

// Number accepts numeric values within optional bounds and, optionally,
// aligned to a step.
type Number struct {
	min, max     *float64
	interval     Interval
	step, offset *float64

	numericStrings bool
}

// NumberOption configures a Number.
type NumberOption func(*Number)

// Min sets the lower bound.
func Min(v float64) NumberOption {
	return func(n *Number) { n.min = &v }
}

// Max sets the upper bound.
func Max(v float64) NumberOption {
	return func(n *Number) { n.max = &v }
}

// WithInterval sets bound inclusivity. Both bounds are inclusive by default.
func WithInterval(i Interval) NumberOption {
	return func(n *Number) { n.interval = i }
}

// Step requires (value - offset) to be a multiple of v.
func Step(v float64) NumberOption {
	return func(n *Number) { n.step = &v }
}

// Offset sets the step offset. Without it steps align with the lower bound,
// or with zero if there is none.
func Offset(v float64) NumberOption {
	return func(n *Number) { n.offset = &v }
}

// NumericStrings makes the descriptor also accept strings that parse as a
// float, such as "123".
func NumericStrings() NumberOption {
	return func(n *Number) { n.numericStrings = true }
}

// NewNumber creates a Number descriptor. It panics if a bound or offset is
// not finite or the step is not positive.
func NewNumber(opts ...NumberOption) *Number {
	n := &Number{interval: Include}
	for _, opt := range opts {
		opt(n)
	}
	if n.min != nil {
		invariant.Finite(*n.min, "min")
	}
	if n.max != nil {
		invariant.Finite(*n.max, "max")
	}
	if n.offset != nil {
		invariant.Finite(*n.offset, "offset")
	}
	if n.step != nil {
		invariant.Finite(*n.step, "step")
		invariant.Positive(*n.step, "step")
	}
	if n.step != nil && n.offset == nil {
		off := 0.0
		if n.min != nil {
			off = pyMod(*n.min, *n.step)
		}
		n.offset = &off
	}
	return n
}

// checkNumberArg reports the argument errors NewNumber would panic on.
func checkNumberArg(name string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("Number argument %s must be finite, got %s", name, formatFloat(f))
	}
	if name == "step" && f <= 0 {
		return fmt.Errorf("Number argument step must be positive, got %s", formatFloat(f))
	}
	return nil
}

// pyMod is a modulo whose result takes the sign of the divisor.
func pyMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// Validate checks type, bounds and step alignment.
func (p *Number) Validate(value any, _ Receiver) error {
	v, ok := toFloat(value)
	if !ok && p.numericStrings {
		if s, isStr := asString(value); isStr {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			v, ok = f, err == nil
		}
	}
	if !ok {
		return shapeError("%s has type %s but a number was expected.", formatValue(value), typeName(value))
	}
	if math.IsNaN(v) {
		return rangeError("%s is not a comparable number.", formatValue(value))
	}

	shown := formatValue(value)
	if p.min != nil {
		lo := formatFloat(*p.min)
		if p.interval&IncludeMin != 0 {
			if v < *p.min {
				return rangeError("%s is smaller than lower bound %s, but must be greater or equal.", shown, lo)
			}
		} else {
			if v == *p.min {
				return rangeError("%s is equal to lower bound %s, but must be greater.", shown, lo)
			}
			if v < *p.min {
				return rangeError("%s is smaller than lower bound %s, but must be greater.", shown, lo)
			}
		}
	}
	if p.max != nil {
		hi := formatFloat(*p.max)
		if p.interval&IncludeMax != 0 {
			if v > *p.max {
				return rangeError("%s is greater than upper bound %s, but must be smaller or equal.", shown, hi)
			}
		} else {
			if v == *p.max {
				return rangeError("%s is equal to upper bound %s, but must be smaller.", shown, hi)
			}
			if v > *p.max {
				return rangeError("%s is greater than upper bound %s, but must be smaller.", shown, hi)
			}
		}
	}
	if p.step != nil && math.Mod(v-*p.offset, *p.step) != 0 {
		return rangeError("%s is not an increment of %s%s.", shown, formatFloat(*p.step), offsetSuffix(*p.offset))
	}
	return nil
}

// Description renders the bounds and step.
func (p *Number) Description() string {
	spec := numberSpec{interval: p.interval}
	if p.min != nil {
		spec.min = *p.min
	}
	if p.max != nil {
		spec.max = *p.max
	}
	if p.step != nil {
		spec.step = *p.step
		spec.offset = *p.offset
	}
	return spec.describe()
}

// numberSpec holds Number arguments that may still be symbolic, so that
// deferred descriptors can be described before their attributes resolve.
type numberSpec struct {
	min, max     any
	interval     Interval
	step, offset any
}

func (s numberSpec) describe() string {
	var b strings.Builder
	b.WriteString("a number")
	if s.min != nil {
		fmt.Fprintf(&b, " greater than%s ``%s``", orEqual(s.interval&IncludeMin != 0), formatBound(s.min))
		if s.max != nil {
			b.WriteString(" and")
		}
	}
	if s.max != nil {
		fmt.Fprintf(&b, " smaller than%s ``%s``", orEqual(s.interval&IncludeMax != 0), formatBound(s.max))
	}
	if s.step != nil {
		fmt.Fprintf(&b, ", in increments of %s", formatBound(s.step))
		if off, ok := toFloat(s.offset); ok {
			b.WriteString(offsetSuffix(off))
		} else if s.offset != nil {
			b.WriteString(" offset by " + formatBound(s.offset))
		}
	}
	return b.String()
}

func orEqual(included bool) string {
	if included {
		return " or equal to"
	}
	return ""
}

func offsetSuffix(offset float64) string {
	if offset == 0 {
		return ""
	}
	return " offset by " + formatFloat(offset)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatBound(v any) string {
	if f, ok := toFloat(v); ok {
		return formatFloat(f)
	}
	return formatValue(v)
}

// JSONSchema returns a number schema with the same bounds.
func (p *Number) JSONSchema() map[string]any {
	s := map[string]any{"type": "number", "description": p.Description()}
	if p.min != nil {
		if p.interval&IncludeMin != 0 {
			s["minimum"] = *p.min
		} else {
			s["exclusiveMinimum"] = *p.min
		}
	}
	if p.max != nil {
		if p.interval&IncludeMax != 0 {
			s["maximum"] = *p.max
		} else {
			s["exclusiveMaximum"] = *p.max
		}
	}
	if p.step != nil && *p.offset == 0 {
		s["multipleOf"] = *p.step
	}
	if p.numericStrings {
		s["type"] = []any{"number", "string"}
	}
	return s
}
