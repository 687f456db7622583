package signature

import (
	"fmt"
	"log/slog"

	"github.com/cartavis/carta-go/core/validation"
)

// Builder provides a fluent API for declaring a Signature.
type Builder struct {
	name   string
	params []Param
	opts   []Option
}

// Build starts a Signature for the named function.
func Build(name string) *Builder {
	return &Builder{name: name}
}

// Param starts a parameter. Call Done to return to the Builder.
func (b *Builder) Param(name string, descriptor validation.Parameter) *ParamBuilder {
	return &ParamBuilder{parent: b, param: Param{Name: name, Descriptor: descriptor}}
}

// Params appends parameters that were declared elsewhere, for example with
// Zip.
func (b *Builder) Params(params ...Param) *Builder {
	b.params = append(b.params, params...)
	return b
}

// Doc sets the documentation template.
func (b *Builder) Doc(template string) *Builder {
	b.opts = append(b.opts, WithDoc(template))
	return b
}

// Since records the version that introduced the function.
func (b *Builder) Since(version string) *Builder {
	b.opts = append(b.opts, WithSince(version))
	return b
}

// Logger sets the logger.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.opts = append(b.opts, WithLogger(l))
	return b
}

// Metrics sets the metrics sink.
func (b *Builder) Metrics(m *Metrics) *Builder {
	b.opts = append(b.opts, WithMetrics(m))
	return b
}

// Options appends arbitrary options, typically a shared logger and metrics
// sink.
func (b *Builder) Options(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Signature finishes the declaration.
func (b *Builder) Signature() *Signature {
	return New(b.name, b.params, b.opts...)
}

// ParamBuilder configures a single parameter.
type ParamBuilder struct {
	parent           *Builder
	param            Param
	requiredExplicit bool
}

// Required marks the parameter as required. This is the default.
func (pb *ParamBuilder) Required() *ParamBuilder {
	pb.requiredExplicit = true
	return pb
}

// Default sets the value used when the argument is omitted.
func (pb *ParamBuilder) Default(value any) *ParamBuilder {
	pb.param.Default = value
	pb.param.HasDefault = true
	return pb
}

// Optional wraps the descriptor in NoneOr and defaults the parameter to
// nil.
func (pb *ParamBuilder) Optional() *ParamBuilder {
	pb.param.Descriptor = validation.AllOptional(pb.param.Descriptor)[0]
	return pb.Default(nil)
}

// Done validates the parameter and returns to the parent Builder.
func (pb *ParamBuilder) Done() *Builder {
	if err := pb.validate(); err != nil {
		panic(fmt.Sprintf("invalid parameter %q: %v", pb.param.Name, err))
	}
	pb.parent.params = append(pb.parent.params, pb.param)
	return pb.parent
}

func (pb *ParamBuilder) validate() error {
	if pb.param.Descriptor == nil {
		return fmt.Errorf("parameter has no descriptor")
	}
	if pb.requiredExplicit && pb.param.HasDefault {
		return fmt.Errorf("parameter cannot be both required and have a default value")
	}
	for _, p := range pb.parent.params {
		if p.Name == pb.param.Name {
			return fmt.Errorf("parameter already declared")
		}
	}
	return nil
}
