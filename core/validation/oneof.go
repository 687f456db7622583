package validation

import (
	"strings"
)

// OneOf accepts values equal to one of a fixed set of options.
type OneOf struct {
	options   []any
	normalize func(any) any
}

// NewOneOf creates a OneOf descriptor.
func NewOneOf(options ...any) *OneOf {
	return &OneOf{options: options}
}

// Normalized returns a copy of p that applies fn to each candidate value,
// never to the options, before comparing.
func (p *OneOf) Normalized(fn func(any) any) *OneOf {
	return &OneOf{options: p.options, normalize: fn}
}

// Options returns the permitted values.
func (p *OneOf) Options() []any {
	return append([]any(nil), p.options...)
}

// Validate checks membership.
func (p *OneOf) Validate(value any, _ Receiver) error {
	return p.validate(value, p.Description())
}

func (p *OneOf) validate(value any, desc string) error {
	candidate := value
	if p.normalize != nil {
		candidate = p.normalize(value)
	}
	for _, o := range p.options {
		if equalValues(candidate, o) {
			return nil
		}
	}
	return suggestFor(rangeError("%s is not %s", formatValue(value), desc), candidate, p.options)
}

// Description lists the options.
func (p *OneOf) Description() string {
	return "one of " + joinValues(p.options)
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ", ")
}

// JSONSchema returns an enum schema.
func (p *OneOf) JSONSchema() map[string]any {
	return map[string]any{"enum": jsonValues(p.options), "description": p.Description()}
}

// Lower is a normalizer that lower-cases strings and leaves other values
// unchanged.
func Lower(v any) any {
	if s, ok := asString(v); ok {
		return strings.ToLower(s)
	}
	return v
}

// Enum is an enumerated type whose members a Constant accepts.
type Enum interface {
	// Name is the qualified type name, for example constants.Colormap.
	Name() string
	// Members returns every member in declaration order.
	Members() []any
}

// Constant accepts members of an Enum, or values equal to a member, minus
// an excluded subset.
type Constant struct {
	OneOf
	enum    Enum
	exclude []any
}

// NewConstant creates a Constant descriptor.
func NewConstant(enum Enum, exclude ...any) *Constant {
	var options []any
	for _, m := range enum.Members() {
		excluded := false
		for _, e := range exclude {
			if equalValues(m, e) {
				excluded = true
				break
			}
		}
		if !excluded {
			options = append(options, m)
		}
	}
	return &Constant{
		OneOf:   OneOf{options: options},
		enum:    enum,
		exclude: exclude,
	}
}

// Enum returns the enumerated type.
func (p *Constant) Enum() Enum {
	return p.enum
}

// Validate checks membership.
func (p *Constant) Validate(value any, _ Receiver) error {
	return p.validate(value, p.Description())
}

// Description names the enum type and any exclusions.
func (p *Constant) Description() string {
	desc := "a member of :obj:`" + p.enum.Name() + "`"
	if len(p.exclude) == 0 {
		return desc
	}
	excluded := make([]string, len(p.exclude))
	for i, e := range p.exclude {
		excluded[i] = "``" + quoteValue(e) + "``"
	}
	return desc + " excluding " + strings.Join(excluded, ",")
}

// JSONSchema returns an enum schema of the permitted members.
func (p *Constant) JSONSchema() map[string]any {
	return map[string]any{"enum": jsonValues(p.options), "description": p.Description()}
}

func quoteValue(v any) string {
	if s, ok := asString(v); ok {
		return "'" + s + "'"
	}
	return formatValue(v)
}
