package validation

import (
	"errors"
	"strings"
)

// Union accepts a value if any option accepts it. Options are tried in
// order and the first success wins. Attribute errors are not swallowed:
// they abort the union and propagate unchanged.
type Union struct {
	options     []Parameter
	description string
}

// NewUnion creates a Union descriptor.
func NewUnion(options ...Parameter) *Union {
	return &Union{options: options}
}

// Described returns a copy of p with a custom description.
func (p *Union) Described(description string) *Union {
	return &Union{options: p.options, description: description}
}

// Options returns the member descriptors in order.
func (p *Union) Options() []Parameter {
	return append([]Parameter(nil), p.options...)
}

// Validate tries each option in turn.
func (p *Union) Validate(value any, recv Receiver) error {
	for _, o := range p.options {
		err := o.Validate(value, recv)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrAttribute) {
			return err
		}
	}
	return &Error{
		Kind:    KindExhausted,
		Message: formatValue(value) + " is not " + p.Description() + ".",
	}
}

// Description returns the custom description, or the option descriptions
// joined with "or".
func (p *Union) Description() string {
	if p.description != "" {
		return p.description
	}
	parts := make([]string, len(p.options))
	for i, o := range p.options {
		parts[i] = o.Description()
	}
	return strings.Join(parts, " or ")
}

// JSONSchema returns an anyOf schema.
func (p *Union) JSONSchema() map[string]any {
	branches := make([]any, len(p.options))
	for i, o := range p.options {
		branches[i] = schemaOf(o)
	}
	return map[string]any{"anyOf": branches, "description": p.Description()}
}

// NoneOr is a Union with an additional nil branch. It is the descriptor for
// optional parameters.
type NoneOr struct {
	Union
}

// NewNoneOr creates a NoneOr descriptor.
func NewNoneOr(options ...Parameter) *NoneOr {
	all := append(append([]Parameter(nil), options...), NewNone())
	return &NoneOr{Union: Union{options: all}}
}

// Described returns a copy of p with a custom description.
func (p *NoneOr) Described(description string) *NoneOr {
	return &NoneOr{Union: Union{options: p.options, description: description}}
}

// AllOptional wraps every parameter that is not already a NoneOr in one.
func AllOptional(params ...Parameter) []Parameter {
	out := make([]Parameter, len(params))
	for i, p := range params {
		if _, ok := p.(*NoneOr); ok {
			out[i] = p
			continue
		}
		out[i] = NewNoneOr(p)
	}
	return out
}
