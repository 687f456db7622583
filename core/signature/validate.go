package signature

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/cartavis/carta-go/core/validation"
)

// Args are the arguments of one call. The receiver is passed separately.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// Positional builds Args from positional arguments only.
func Positional(values ...any) Args {
	return Args{Positional: values}
}

// Values are validated arguments keyed by parameter name, with defaults
// filled in.
type Values map[string]any

// Float returns a numeric argument as float64.
func (v Values) Float(name string) (float64, bool) {
	return validation.AsFloat(v[name])
}

// String returns a string argument.
func (v Values) String(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

// Bool returns a boolean argument.
func (v Values) Bool(name string) (bool, bool) {
	b, ok := v[name].(bool)
	return b, ok
}

// Validate checks args against the signature. recv is passed to every
// descriptor so that deferred descriptors can read live state. Any failure
// is returned as a *ValidationFailed.
func (s *Signature) Validate(recv validation.Receiver, args Args) error {
	_, err := s.Bind(recv, args)
	return err
}

// Bind validates args and returns them keyed by parameter name, with
// defaults for omitted optional parameters.
func (s *Signature) Bind(recv validation.Receiver, args Args) (Values, error) {
	start := time.Now()
	values, err := s.bind(recv, args)
	elapsed := time.Since(start)

	if err != nil {
		s.logger.Debug("validation failed", "function", s.name, "error", err, "duration", elapsed)
		s.metrics.observe(s.name, resultInvalid, elapsed)
		return nil, err
	}
	s.logger.Debug("validated call", "function", s.name, "args", len(values), "duration", elapsed)
	s.metrics.observe(s.name, resultOK, elapsed)
	return values, nil
}

func (s *Signature) bind(recv validation.Receiver, args Args) (Values, error) {
	if len(args.Positional) > len(s.params) {
		return nil, &ValidationFailed{
			Kind:     FailureTooMany,
			Function: s.name,
			Reason:   fmt.Sprintf("got %d, expected at most %d", len(args.Positional), len(s.params)),
		}
	}

	values := make(Values, len(s.params))
	for i, v := range args.Positional {
		p := s.params[i]
		if err := p.Descriptor.Validate(v, recv); err != nil {
			return nil, s.invalid(p.Name, err)
		}
		values[p.Name] = v
	}

	keys := make([]string, 0, len(args.Keyword))
	for k := range args.Keyword {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		i, ok := s.index[k]
		if !ok {
			return nil, &ValidationFailed{
				Kind:       FailureUnexpected,
				Function:   s.name,
				Parameter:  k,
				Suggestion: s.closestParam(k),
			}
		}
		if i < len(args.Positional) {
			return nil, &ValidationFailed{Kind: FailureDuplicate, Function: s.name, Parameter: k}
		}
		if err := s.params[i].Descriptor.Validate(args.Keyword[k], recv); err != nil {
			return nil, s.invalid(k, err)
		}
		values[k] = args.Keyword[k]
	}

	for _, p := range s.params {
		if _, ok := values[p.Name]; ok {
			continue
		}
		if !p.HasDefault {
			return nil, &ValidationFailed{Kind: FailureMissing, Function: s.name, Parameter: p.Name}
		}
		values[p.Name] = p.Default
	}
	return values, nil
}

func (s *Signature) invalid(param string, err error) *ValidationFailed {
	return &ValidationFailed{
		Kind:      FailureInvalid,
		Function:  s.name,
		Parameter: param,
		Reason:    StripMarkup(err.Error()),
		Err:       err,
	}
}

func (s *Signature) closestParam(name string) string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// Func is a function body that only runs with validated arguments.
type Func[R any] func(recv validation.Receiver, values Values) (R, error)

// Wrap returns a function that validates its arguments against s and calls
// fn only if every argument is valid.
func Wrap[R any](s *Signature, fn Func[R]) func(recv validation.Receiver, args Args) (R, error) {
	return func(recv validation.Receiver, args Args) (R, error) {
		values, err := s.Bind(recv, args)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(recv, values)
	}
}

// IsValidationFailed reports whether err is or wraps a *ValidationFailed.
func IsValidationFailed(err error) bool {
	var vf *ValidationFailed
	return errors.As(err, &vf)
}
