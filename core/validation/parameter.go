package validation

import "fmt"

// Parameter is a parameter descriptor.
type Parameter interface {
	// Validate checks value. recv is the object whose method is being
	// called and may be nil when no descriptor needs it.
	Validate(value any, recv Receiver) error

	// Description returns prose suitable for documentation. It may contain
	// ``code`` and :obj:`reference` markup.
	Description() string
}

// Receiver exposes the live state that deferred descriptors read at
// validation time.
type Receiver interface {
	Attr(name string) (any, error)
}

// AttrMap is a Receiver backed by a map.
type AttrMap map[string]any

// Attr returns the named attribute.
func (m AttrMap) Attr(name string) (any, error) {
	v, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("no attribute %q", name)
	}
	return v, nil
}

// ReceiverFunc adapts a function to the Receiver interface.
type ReceiverFunc func(name string) (any, error)

// Attr calls f(name).
func (f ReceiverFunc) Attr(name string) (any, error) {
	return f(name)
}

// SchemaProvider is implemented by descriptors that can describe
// themselves as a JSON Schema fragment.
type SchemaProvider interface {
	JSONSchema() map[string]any
}
