package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cartavis/carta-go/core/invariant"
)

// SizeOption bounds the number of elements of an IterableOf or MapOf.
type SizeOption func(*sizeBounds)

type sizeBounds struct {
	min, max *int
}

// MinSize sets the minimum number of elements.
func MinSize(n int) SizeOption {
	return func(b *sizeBounds) { b.min = &n }
}

// MaxSize sets the maximum number of elements.
func MaxSize(n int) SizeOption {
	return func(b *sizeBounds) { b.max = &n }
}

func newSizeBounds(opts []SizeOption) sizeBounds {
	var b sizeBounds
	for _, opt := range opts {
		opt(&b)
	}
	if b.min != nil {
		invariant.NonNegative(*b.min, "min_size")
	}
	if b.max != nil {
		invariant.NonNegative(*b.max, "max_size")
	}
	return b
}

func (b sizeBounds) check(value any, n int) error {
	if b.min != nil && n < *b.min {
		return rangeError("%s has %d elements, but must have at least %d.", formatValue(value), n, *b.min)
	}
	if b.max != nil && n > *b.max {
		return rangeError("%s has %d elements, but may have at most %d.", formatValue(value), n, *b.max)
	}
	return nil
}

func (b sizeBounds) describe() string {
	var size []string
	if b.min != nil {
		size = append(size, fmt.Sprintf("at least %d elements", *b.min))
	}
	if b.max != nil {
		size = append(size, fmt.Sprintf("at most %d elements", *b.max))
	}
	if len(size) == 0 {
		return ""
	}
	return "with " + strings.Join(size, " and ") + " "
}

func (b sizeBounds) apply(s map[string]any, minKey, maxKey string) {
	if b.min != nil {
		s[minKey] = *b.min
	}
	if b.max != nil {
		s[maxKey] = *b.max
	}
}

// IterableOf accepts slices, arrays and maps whose every element the given
// descriptor accepts. Maps are iterated over their keys. Strings are not
// iterable.
type IterableOf struct {
	param  Parameter
	bounds sizeBounds
}

// NewIterableOf creates an IterableOf descriptor.
func NewIterableOf(param Parameter, opts ...SizeOption) *IterableOf {
	return &IterableOf{param: param, bounds: newSizeBounds(opts)}
}

// Element returns the element descriptor.
func (p *IterableOf) Element() Parameter {
	return p.param
}

// Validate checks every element, then the element count.
func (p *IterableOf) Validate(value any, recv Receiver) error {
	elems, ok := elements(value)
	if !ok {
		return rangeError("%s is not iterable, but %s was expected.", formatValue(value), p.Description())
	}
	for _, e := range elems {
		if err := p.param.Validate(e, recv); err != nil {
			return err
		}
	}
	return p.bounds.check(value, len(elems))
}

// Description describes the bounds and the element descriptor.
func (p *IterableOf) Description() string {
	return "an iterable " + p.bounds.describe() + "in which each element is " + p.param.Description()
}

// JSONSchema returns an array schema.
func (p *IterableOf) JSONSchema() map[string]any {
	s := map[string]any{
		"type":        "array",
		"items":       schemaOf(p.param),
		"description": p.Description(),
	}
	p.bounds.apply(s, "minItems", "maxItems")
	return s
}

// elements returns the members of a slice or array, or the keys of a map in
// a stable order.
func elements(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.Map:
		return sortedKeys(rv), true
	}
	return nil, false
}

func sortedKeys(rv reflect.Value) []any {
	keys := rv.MapKeys()
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k.Interface()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return formatValue(out[i]) < formatValue(out[j])
	})
	return out
}

// MapOf accepts maps whose keys and values the given descriptors accept.
// Values are checked before keys.
type MapOf struct {
	key, value Parameter
	bounds     sizeBounds
}

// NewMapOf creates a MapOf descriptor.
func NewMapOf(key, value Parameter, opts ...SizeOption) *MapOf {
	return &MapOf{key: key, value: value, bounds: newSizeBounds(opts)}
}

// Validate checks every value, every key, then the entry count.
func (p *MapOf) Validate(value any, recv Receiver) error {
	if value == nil || reflect.ValueOf(value).Kind() != reflect.Map {
		return rangeError("%s is not a map, but %s was expected.", formatValue(value), p.Description())
	}
	rv := reflect.ValueOf(value)
	keys := sortedKeys(rv)
	for _, k := range keys {
		if err := p.value.Validate(rv.MapIndex(reflect.ValueOf(k)).Interface(), recv); err != nil {
			return err
		}
	}
	for _, k := range keys {
		if err := p.key.Validate(k, recv); err != nil {
			return err
		}
	}
	return p.bounds.check(value, len(keys))
}

// Description describes the bounds and the key and value descriptors.
func (p *MapOf) Description() string {
	return "a map " + p.bounds.describe() + "in which each key is " + p.key.Description() +
		" and each value is " + p.value.Description()
}

// JSONSchema returns an object schema. Key descriptors are expressed with
// propertyNames.
func (p *MapOf) JSONSchema() map[string]any {
	s := map[string]any{
		"type":                 "object",
		"propertyNames":        schemaOf(p.key),
		"additionalProperties": schemaOf(p.value),
		"description":          p.Description(),
	}
	p.bounds.apply(s, "minProperties", "maxProperties")
	return s
}
