package validation

import (
	"reflect"
	"regexp"
	"strings"
)

// modulePath prefixes types whose names are rendered as references in
// descriptions.
const modulePath = "github.com/cartavis/carta-go/"

// InstanceOf accepts values of the given types. A value is accepted if its
// type is assignable to one of them, so interface types accept every
// implementation.
type InstanceOf struct {
	types []reflect.Type
}

// NewInstanceOf creates an InstanceOf descriptor. Use reflect.TypeFor to
// obtain types.
func NewInstanceOf(types ...reflect.Type) *InstanceOf {
	return &InstanceOf{types: types}
}

// Validate checks the dynamic type of value.
func (p *InstanceOf) Validate(value any, _ Receiver) error {
	if value != nil {
		vt := reflect.TypeOf(value)
		for _, t := range p.types {
			if vt.AssignableTo(t) {
				return nil
			}
		}
	}
	return shapeError("%s has type %s but %s was expected.", formatValue(value), typeName(value), p.Description())
}

// Description returns "an instance of T" naming every accepted type.
func (p *InstanceOf) Description() string {
	names := make([]string, len(p.types))
	for i, t := range p.types {
		if strings.HasPrefix(t.PkgPath(), modulePath) {
			names[i] = ":obj:`" + t.String() + "`"
		} else {
			names[i] = t.String()
		}
	}
	switch len(names) {
	case 0:
		return "an instance of nothing"
	case 1:
		return "an instance of " + names[0]
	}
	last := names[len(names)-2] + " or " + names[len(names)-1]
	return "an instance of " + strings.Join(append(names[:len(names)-2:len(names)-2], last), ", ")
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// Flag modifies pattern matching in String descriptors.
type Flag int

const (
	// IgnoreCase makes the pattern case-insensitive.
	IgnoreCase Flag = 1 << iota
)

// String accepts strings, optionally requiring a pattern to match somewhere
// in the value. Patterns are not implicitly anchored.
type String struct {
	pattern string
	flags   Flag
	re      *regexp.Regexp
}

// NewString creates a String descriptor. An empty pattern accepts any
// string. It panics if pattern does not compile.
func NewString(pattern string, flags Flag) *String {
	s := &String{pattern: pattern, flags: flags}
	if pattern != "" {
		expr := pattern
		if flags&IgnoreCase != 0 {
			expr = "(?i)" + expr
		}
		s.re = regexp.MustCompile(expr)
	}
	return s
}

// Pattern returns the configured pattern, or "" if any string is accepted.
func (p *String) Pattern() string {
	return p.pattern
}

// Validate checks that value is a string and matches the pattern.
func (p *String) Validate(value any, _ Receiver) error {
	s, ok := asString(value)
	if !ok {
		return shapeError("%s has type %s but a string was expected.", formatValue(value), typeName(value))
	}
	if p.re != nil && !p.re.MatchString(s) {
		return rangeError("%s does not match %s", s, p.pattern)
	}
	return nil
}

// Description returns "a string" or "a string matching ``pattern``".
func (p *String) Description() string {
	if p.pattern != "" {
		return "a string matching ``" + p.pattern + "``"
	}
	return "a string"
}

// Boolean accepts true and false. A loose Boolean also accepts the numbers
// 0 and 1, for callers relaying loosely typed JSON.
type Boolean struct {
	loose bool
}

// NewBoolean creates a strict Boolean descriptor.
func NewBoolean() *Boolean {
	return &Boolean{}
}

// NewLooseBoolean creates a Boolean descriptor that also accepts 0 and 1.
func NewLooseBoolean() *Boolean {
	return &Boolean{loose: true}
}

// Validate checks that value is a boolean.
func (p *Boolean) Validate(value any, _ Receiver) error {
	if _, ok := value.(bool); ok {
		return nil
	}
	if p.loose {
		if f, ok := toFloat(value); ok && (f == 0 || f == 1) {
			return nil
		}
	}
	return shapeError("%s is not a boolean value.", formatValue(value))
}

// Description returns "a boolean".
func (p *Boolean) Description() string {
	return "a boolean"
}

// NoneParameter accepts only nil. It is the implicit branch of NoneOr.
type NoneParameter struct{}

// NewNone creates a NoneParameter.
func NewNone() *NoneParameter {
	return &NoneParameter{}
}

// Validate checks that value is nil.
func (p *NoneParameter) Validate(value any, _ Receiver) error {
	if !isNil(value) {
		return rangeError("%s is not nil.", formatValue(value))
	}
	return nil
}

// Description returns "``nil``".
func (p *NoneParameter) Description() string {
	return "``nil``"
}
