// Package signature binds ordered parameter descriptors to a named
// function and validates call arguments at the call boundary.
//
// A Signature is the Go form of a validated method: it knows the parameter
// names, their descriptors and defaults, and renders its own documentation
// from the descriptors so that docs and runtime checks cannot drift apart.
//
//	sig := signature.Build("set_channel").
//		Param("channel", validation.NewEvaluate(validation.NumberFactory,
//			0, validation.Attr("depth"), validation.IncludeMin, validation.Kw("step", 1))).Done().
//		Param("recursive", validation.NewBoolean()).Default(true).Done().
//		Doc("Set the channel.\n\nchannel : {0}\nrecursive : {1}").
//		Signature()
//
//	setChannel := signature.Wrap(sig, func(recv validation.Receiver, v signature.Values) (struct{}, error) {
//		// only reached when every argument is valid
//	})
//
// Every failure is reported as a single *ValidationFailed before the
// wrapped function runs.
package signature

import (
	"fmt"
	"log/slog"

	"golang.org/x/mod/semver"

	"github.com/cartavis/carta-go/core/invariant"
	"github.com/cartavis/carta-go/core/validation"
)

// Param is one named parameter of a Signature.
type Param struct {
	Name       string
	Descriptor validation.Parameter

	// Default is used when the argument is omitted. Defaults are trusted
	// and not validated.
	Default    any
	HasDefault bool
}

// Required reports whether the argument must be supplied.
func (p Param) Required() bool {
	return !p.HasDefault
}

// Signature is an ordered list of parameters bound to a function name.
type Signature struct {
	name    string
	params  []Param
	index   map[string]int
	doc     string
	since   string
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Signature.
type Option func(*Signature)

// WithLogger sets the logger used for validation tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Signature) { s.logger = l }
}

// WithMetrics records validation outcomes and latency.
func WithMetrics(m *Metrics) Option {
	return func(s *Signature) { s.metrics = m }
}

// WithDoc renders a documentation template. See RenderDoc.
func WithDoc(template string) Option {
	return func(s *Signature) { s.doc = template }
}

// WithSince records the version that introduced the function. It must be
// a valid semantic version such as v1.2.0.
func WithSince(version string) Option {
	return func(s *Signature) { s.since = version }
}

// New creates a Signature. It panics on duplicate or empty parameter names,
// a nil descriptor or an invalid version, because signatures are declared
// once at package initialisation.
func New(name string, params []Param, opts ...Option) *Signature {
	invariant.Precondition(name != "", "signature name cannot be empty")

	s := &Signature{
		name:   name,
		params: append([]Param(nil), params...),
		index:  make(map[string]int, len(params)),
		logger: defaultLogger(),
	}
	for i, p := range s.params {
		invariant.Precondition(p.Name != "", "%s: parameter %d has no name", name, i)
		invariant.NotNil(p.Descriptor, fmt.Sprintf("%s.%s descriptor", name, p.Name))
		_, dup := s.index[p.Name]
		invariant.Precondition(!dup, "%s: duplicate parameter %q", name, p.Name)
		s.index[p.Name] = i
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.since != "" {
		invariant.Precondition(semver.IsValid(s.since), "%s: invalid version %q", name, s.since)
		s.since = semver.Canonical(s.since)
	}
	if s.doc != "" {
		doc, err := RenderDoc(s.doc, s.Vargs())
		invariant.ExpectNoError(err, name+" documentation")
		s.doc = doc
	}
	return s
}

// Zip pairs names with descriptors positionally. Extra names or
// descriptors are ignored. A NoneOr descriptor makes its parameter
// optional with a nil default, so lists built with AllOptional can be
// omitted entirely.
func Zip(names []string, descriptors []validation.Parameter) []Param {
	n := min(len(names), len(descriptors))
	out := make([]Param, n)
	for i := 0; i < n; i++ {
		out[i] = Param{Name: names[i], Descriptor: descriptors[i]}
		if _, ok := descriptors[i].(*validation.NoneOr); ok {
			out[i].HasDefault = true
		}
	}
	return out
}

// Name returns the function name.
func (s *Signature) Name() string {
	return s.name
}

// Params returns the parameters in order.
func (s *Signature) Params() []Param {
	return append([]Param(nil), s.params...)
}

// Vargs returns the descriptors in parameter order, so that functions which
// forward to other functions can reuse their descriptors.
func (s *Signature) Vargs() []validation.Parameter {
	out := make([]validation.Parameter, len(s.params))
	for i, p := range s.params {
		out[i] = p.Descriptor
	}
	return out
}

// Doc returns the rendered documentation, or "" if none was given.
func (s *Signature) Doc() string {
	return s.doc
}

// Since returns the canonical version that introduced the function.
func (s *Signature) Since() string {
	return s.since
}

// Param returns the named parameter.
func (s *Signature) Param(name string) (Param, bool) {
	i, ok := s.index[name]
	if !ok {
		return Param{}, false
	}
	return s.params[i], true
}
