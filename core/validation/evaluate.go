package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cartavis/carta-go/core/invariant"
)

// AttrRef marks an Evaluate argument that is read from the receiver at
// validation time.
type AttrRef struct {
	Name string
	// Unpack spreads an iterable attribute into separate positional
	// arguments.
	Unpack bool
}

// Attr refers to a receiver attribute.
func Attr(name string) AttrRef {
	return AttrRef{Name: name}
}

// Attrs refers to an iterable receiver attribute whose elements become
// separate arguments.
func Attrs(name string) AttrRef {
	return AttrRef{Name: name, Unpack: true}
}

// KwArg is a named Evaluate argument.
type KwArg struct {
	Key   string
	Value any
}

// Kw names an Evaluate argument. The value may be an Attr.
func Kw(key string, value any) KwArg {
	return KwArg{Key: key, Value: value}
}

// Symbol stands in for an unresolved attribute in descriptions.
type Symbol string

// String returns the symbol text
func (s Symbol) String() string { return string(s) }

// Factory constructs a descriptor from positional and named arguments.
type Factory struct {
	Name string

	// New builds the descriptor from resolved arguments.
	New func(args []any, kwargs map[string]any) (Parameter, error)

	// Describe renders the descriptor from arguments in which unresolved
	// attributes appear as Symbol values.
	Describe func(args []any, kwargs map[string]any) string
}

// Evaluate is a descriptor that is constructed when a value is validated,
// so that its arguments can depend on the receiver's current state.
type Evaluate struct {
	factory Factory
	args    []any
	kwargs  []KwArg
}

// NewEvaluate creates an Evaluate descriptor. Arguments of type KwArg are
// passed by name; all others positionally. Any argument may be an AttrRef.
func NewEvaluate(factory Factory, args ...any) *Evaluate {
	invariant.Precondition(factory.New != nil && factory.Describe != nil, "factory %q is incomplete", factory.Name)

	e := &Evaluate{factory: factory}
	for _, a := range args {
		if kw, ok := a.(KwArg); ok {
			ref, isRef := kw.Value.(AttrRef)
			invariant.Precondition(!isRef || !ref.Unpack, "keyword %q cannot unpack attribute %q", kw.Key, ref.Name)
			e.kwargs = append(e.kwargs, kw)
			continue
		}
		e.args = append(e.args, a)
	}
	return e
}

// Validate resolves the arguments against recv, constructs the descriptor
// and validates value with it.
func (p *Evaluate) Validate(value any, recv Receiver) error {
	args, kwargs, err := p.resolve(recv)
	if err != nil {
		return err
	}
	param, err := p.factory.New(args, kwargs)
	if err != nil {
		return &Error{
			Kind:    KindShape,
			Message: fmt.Sprintf("cannot construct %s descriptor: %v", p.factory.Name, err),
			cause:   err,
		}
	}
	return param.Validate(value, recv)
}

func (p *Evaluate) resolve(recv Receiver) ([]any, map[string]any, error) {
	lookup := func(name string) (any, error) {
		if recv == nil {
			return nil, attributeError(fmt.Errorf("no receiver"), name)
		}
		v, err := recv.Attr(name)
		if err != nil {
			return nil, attributeError(err, name)
		}
		return v, nil
	}

	args := make([]any, 0, len(p.args))
	for _, a := range p.args {
		ref, ok := a.(AttrRef)
		if !ok {
			args = append(args, a)
			continue
		}
		v, err := lookup(ref.Name)
		if err != nil {
			return nil, nil, err
		}
		if !ref.Unpack {
			args = append(args, v)
			continue
		}
		elems, ok := elements(v)
		if !ok {
			return nil, nil, shapeError("attribute %s is %s, which cannot be unpacked.", ref.Name, formatValue(v))
		}
		args = append(args, elems...)
	}

	kwargs := make(map[string]any, len(p.kwargs))
	for _, kw := range p.kwargs {
		v := kw.Value
		if ref, ok := v.(AttrRef); ok {
			resolved, err := lookup(ref.Name)
			if err != nil {
				return nil, nil, err
			}
			v = resolved
		}
		kwargs[kw.Key] = v
	}
	return args, kwargs, nil
}

// Description renders the descriptor with attributes shown as self.name.
func (p *Evaluate) Description() string {
	args := make([]any, len(p.args))
	for i, a := range p.args {
		args[i] = symbolize(a)
	}
	kwargs := make(map[string]any, len(p.kwargs))
	for _, kw := range p.kwargs {
		kwargs[kw.Key] = symbolize(kw.Value)
	}
	return p.factory.Describe(args, kwargs) + ", evaluated at runtime"
}

// Factory returns the factory used to construct the descriptor.
func (p *Evaluate) Factory() Factory {
	return p.factory
}

func symbolize(a any) any {
	ref, ok := a.(AttrRef)
	if !ok {
		return a
	}
	if ref.Unpack {
		return Symbol("*self." + ref.Name)
	}
	return Symbol("self." + ref.Name)
}

// argList maps positional and named arguments onto parameter names. A
// name given both ways is an error.
func argList(factory string, names []string, args []any, kwargs map[string]any) (map[string]any, error) {
	if len(args) > len(names) {
		return nil, fmt.Errorf("%s takes at most %d arguments, got %d", factory, len(names), len(args))
	}
	out := make(map[string]any, len(names))
	for i, a := range args {
		out[names[i]] = a
	}
	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		known := false
		for _, n := range names {
			if n == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("%s got an unexpected argument %q (accepts %s)", factory, k, strings.Join(names, ", "))
		}
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("%s got multiple values for argument %q", factory, k)
		}
		out[k] = kwargs[k]
	}
	return out, nil
}

var numberArgs = []string{"min", "max", "interval", "step", "offset"}

// NumberFactory builds Number descriptors. Positional arguments are min,
// max, interval, step and offset; nil leaves an argument unset.
var NumberFactory = Factory{
	Name: "Number",
	New: func(args []any, kwargs map[string]any) (Parameter, error) {
		named, err := argList("Number", numberArgs, args, kwargs)
		if err != nil {
			return nil, err
		}
		var opts []NumberOption
		for _, name := range numberArgs {
			v, ok := named[name]
			if !ok || v == nil {
				continue
			}
			f, isNum := toFloat(v)
			if !isNum {
				return nil, fmt.Errorf("Number argument %s must be a number, got %s", name, formatValue(v))
			}
			if name != "interval" {
				if err := checkNumberArg(name, f); err != nil {
					return nil, err
				}
			}
			switch name {
			case "min":
				opts = append(opts, Min(f))
			case "max":
				opts = append(opts, Max(f))
			case "interval":
				opts = append(opts, WithInterval(Interval(f)))
			case "step":
				opts = append(opts, Step(f))
			case "offset":
				opts = append(opts, Offset(f))
			}
		}
		return NewNumber(opts...), nil
	},
	Describe: func(args []any, kwargs map[string]any) string {
		named, err := argList("Number", numberArgs, args, kwargs)
		if err != nil {
			return "a number"
		}
		spec := numberSpec{
			min:      named["min"],
			max:      named["max"],
			interval: Include,
			step:     named["step"],
			offset:   named["offset"],
		}
		if i, ok := toInt(named["interval"]); ok {
			spec.interval = Interval(i)
		}
		if spec.step != nil && spec.offset == nil {
			step, stepOK := toFloat(spec.step)
			switch lo, loOK := toFloat(spec.min); {
			case spec.min == nil:
				spec.offset = 0.0
			case loOK && stepOK:
				spec.offset = pyMod(lo, step)
			}
		}
		return spec.describe()
	},
}

// OneOfFactory builds OneOf descriptors from its positional arguments. The
// optional "normalize" argument must be a func(any) any.
var OneOfFactory = Factory{
	Name: "OneOf",
	New: func(args []any, kwargs map[string]any) (Parameter, error) {
		p := NewOneOf(args...)
		for k, v := range kwargs {
			if k != "normalize" {
				return nil, fmt.Errorf("OneOf got an unexpected argument %q", k)
			}
			fn, ok := v.(func(any) any)
			if !ok {
				return nil, fmt.Errorf("OneOf normalize must be a func(any) any")
			}
			p = p.Normalized(fn)
		}
		return p, nil
	},
	Describe: func(args []any, _ map[string]any) string {
		return "one of " + joinValues(args)
	},
}

var iterableArgs = []string{"param", "min_size", "max_size"}

// IterableFactory builds IterableOf descriptors. Positional arguments are
// the element descriptor, min_size and max_size.
var IterableFactory = Factory{
	Name: "IterableOf",
	New: func(args []any, kwargs map[string]any) (Parameter, error) {
		named, err := argList("IterableOf", iterableArgs, args, kwargs)
		if err != nil {
			return nil, err
		}
		param, ok := named["param"].(Parameter)
		if !ok {
			return nil, fmt.Errorf("IterableOf param must be a descriptor, got %s", formatValue(named["param"]))
		}
		var opts []SizeOption
		for _, name := range iterableArgs[1:] {
			v, set := named[name]
			if !set || v == nil {
				continue
			}
			n, isInt := toInt(v)
			if !isInt {
				return nil, fmt.Errorf("IterableOf %s must be an integer, got %s", name, formatValue(v))
			}
			if n < 0 {
				return nil, fmt.Errorf("IterableOf %s must not be negative, got %d", name, n)
			}
			if name == "min_size" {
				opts = append(opts, MinSize(n))
			} else {
				opts = append(opts, MaxSize(n))
			}
		}
		return NewIterableOf(param, opts...), nil
	},
	Describe: func(args []any, kwargs map[string]any) string {
		named, err := argList("IterableOf", iterableArgs, args, kwargs)
		if err != nil {
			return "an iterable"
		}
		var size []string
		if v := named["min_size"]; v != nil {
			size = append(size, "at least "+formatBound(v)+" elements")
		}
		if v := named["max_size"]; v != nil {
			size = append(size, "at most "+formatBound(v)+" elements")
		}
		desc := "an iterable "
		if len(size) > 0 {
			desc += "with " + strings.Join(size, " and ") + " "
		}
		elem := "anything"
		if p, ok := named["param"].(Parameter); ok {
			elem = p.Description()
		}
		return desc + "in which each element is " + elem
	},
}
