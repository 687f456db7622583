package signature

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartavis/carta-go/core/constants"
	"github.com/cartavis/carta-go/core/validation"
)

func colormapSignature(opts ...Option) *Signature {
	return New("set_colormap", []Param{
		{Name: "colormap", Descriptor: validation.NewConstant(constants.Colormaps)},
		{Name: "invert", Descriptor: validation.NewBoolean(), Default: false, HasDefault: true},
	}, opts...)
}

func TestColormapEndToEnd(t *testing.T) {
	sig := colormapSignature()

	err := sig.Validate(nil, Args{Keyword: map[string]any{"colormap": "viridis", "invert": true}})
	assert.NoError(t, err)

	err = sig.Validate(nil, Args{Keyword: map[string]any{"colormap": "not-a-colormap", "invert": true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a member of")
	assert.Contains(t, err.Error(), "Invalid function parameter passed to set_colormap: not-a-colormap is not a member of constants.Colormap")
	assert.NotContains(t, err.Error(), ":obj:")

	var vf *ValidationFailed
	require.ErrorAs(t, err, &vf)
	assert.Equal(t, FailureInvalid, vf.Kind)
	assert.Equal(t, "colormap", vf.Parameter)
	assert.ErrorIs(t, err, validation.ErrRange)
}

func TestWrapIsAtomic(t *testing.T) {
	sig := colormapSignature()
	calls := 0
	setColormap := Wrap(sig, func(recv validation.Receiver, v Values) (string, error) {
		calls++
		s, _ := v.String("colormap")
		return s, nil
	})

	_, err := setColormap(nil, Positional("viridis", "yes"))
	require.Error(t, err)
	assert.True(t, IsValidationFailed(err))
	assert.Equal(t, 0, calls, "wrapped function must not run when any argument is invalid")

	got, err := setColormap(nil, Positional("magma"))
	require.NoError(t, err)
	assert.Equal(t, "magma", got)
	assert.Equal(t, 1, calls)
}

func TestBindFillsDefaults(t *testing.T) {
	values, err := colormapSignature().Bind(nil, Positional("viridis"))
	require.NoError(t, err)
	assert.Equal(t, Values{"colormap": "viridis", "invert": false}, values)
}

func TestCallShapeFailures(t *testing.T) {
	sig := colormapSignature()

	tests := []struct {
		name string
		args Args
		kind FailureKind
		want string
	}{
		{
			name: "unexpected keyword",
			args: Args{Positional: []any{"viridis"}, Keyword: map[string]any{"invrt": true}},
			kind: FailureUnexpected,
			want: "Unexpected keyword parameter passed to set_colormap: invrt. Did you mean 'invert'?",
		},
		{
			name: "missing required",
			args: Args{Keyword: map[string]any{"invert": true}},
			kind: FailureMissing,
			want: "Missing required parameter passed to set_colormap: colormap",
		},
		{
			name: "too many positional",
			args: Positional("viridis", true, 1),
			kind: FailureTooMany,
			want: "Too many positional parameters passed to set_colormap: got 3, expected at most 2",
		},
		{
			name: "duplicate",
			args: Args{Positional: []any{"viridis"}, Keyword: map[string]any{"colormap": "magma"}},
			kind: FailureDuplicate,
			want: "Duplicate parameter passed to set_colormap: colormap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sig.Validate(nil, tt.args)
			var vf *ValidationFailed
			require.ErrorAs(t, err, &vf)
			assert.Equal(t, tt.kind, vf.Kind)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestEvaluateUsesReceiver(t *testing.T) {
	sig := Build("set_channel").
		Param("channel", validation.NewEvaluate(validation.NumberFactory,
			0, validation.Attr("depth"), validation.IncludeMin, validation.Kw("step", 1))).Done().
		Param("recursive", validation.NewBoolean()).Default(true).Done().
		Signature()

	image := validation.AttrMap{"depth": 5}
	assert.NoError(t, sig.Validate(image, Positional(4)))

	err := sig.Validate(image, Positional(7))
	require.Error(t, err)
	assert.Equal(t, "Invalid function parameter passed to set_channel: 7 is greater than upper bound 5, but must be smaller.", err.Error())

	err = sig.Validate(nil, Positional(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrAttribute))
}

func TestVargsReuseWithAllOptional(t *testing.T) {
	configure := New("configure_contours", Zip(
		[]string{"levels", "smoothing_mode", "smoothing_factor"},
		validation.AllOptional(
			validation.NewIterableOf(validation.NewNumber()),
			validation.NewConstant(constants.SmoothingModes),
			validation.NewNumber(),
		),
	))
	dash := New("set_contour_dash", Zip(
		[]string{"dash_mode", "thickness"},
		validation.AllOptional(validation.NewConstant(constants.ContourDashModes), validation.NewNumber()),
	))

	vargs := validation.AllOptional(append(configure.Vargs(), dash.Vargs()...)...)
	plot := New("plot_contours", Zip(
		[]string{"levels", "smoothing_mode", "smoothing_factor", "dash_mode", "thickness"}, vargs))

	require.Len(t, plot.Params(), 5)
	assert.Same(t, configure.Vargs()[0], plot.Vargs()[0])
	assert.Same(t, dash.Vargs()[1], plot.Vargs()[4])

	assert.NoError(t, plot.Validate(nil, Positional(nil, nil, nil, "Dashed")))
	assert.Error(t, plot.Validate(nil, Positional(nil, nil, nil, "Dotted")))

	for _, p := range plot.Params() {
		assert.False(t, p.Required(), p.Name)
	}
	values, err := plot.Bind(nil, Args{Keyword: map[string]any{"levels": []any{1, 2, 3}, "dash_mode": "Dashed"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"levels":           []any{1, 2, 3},
		"smoothing_mode":   nil,
		"smoothing_factor": nil,
		"dash_mode":        "Dashed",
		"thickness":        nil,
	}, map[string]any(values))
}

func TestDocRendering(t *testing.T) {
	sig := New("set_channel", []Param{
		{Name: "channel", Descriptor: validation.NewNumber(validation.Min(0))},
		{Name: "recursive", Descriptor: validation.NewBoolean(), Default: true, HasDefault: true},
	}, WithDoc("Set the channel.\n\nchannel : {0}\nrecursive : {1}\n{{literal}}"))

	want := "Set the channel.\n\nchannel : *a number greater than or equal to* ``0``\nrecursive : a boolean\n{literal}"
	assert.Equal(t, want, sig.Doc())
}

func TestDocPlaceholderOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() {
		New("f", []Param{{Name: "a", Descriptor: validation.NewNumber()}}, WithDoc("{1}"))
	})
}

func TestSince(t *testing.T) {
	sig := colormapSignature(WithSince("v1.2"))
	assert.Equal(t, "v1.2.0", sig.Since())

	assert.Panics(t, func() { colormapSignature(WithSince("1.2")) })
}

func TestBuilderRejectsBadParams(t *testing.T) {
	assert.Panics(t, func() {
		Build("f").Param("x", nil).Done()
	})
	assert.Panics(t, func() {
		Build("f").Param("x", validation.NewNumber()).Required().Default(1).Done()
	})
	assert.Panics(t, func() {
		Build("f").Param("x", validation.NewNumber()).Done().Param("x", validation.NewNumber()).Done()
	})
}

func TestBuilderOptional(t *testing.T) {
	sig := Build("set_text").
		Param("title", validation.NewString("", 0)).Optional().Done().
		Signature()

	values, err := sig.Bind(nil, Args{})
	require.NoError(t, err)
	assert.Nil(t, values["title"])
	assert.NoError(t, sig.Validate(nil, Positional(nil)))
}

func TestMetricsAndLogging(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sig := colormapSignature(WithMetrics(metrics), WithLogger(logger))
	require.NoError(t, sig.Validate(nil, Positional("viridis")))
	require.Error(t, sig.Validate(nil, Positional("nope")))
	require.Error(t, sig.Validate(nil, Positional("nope")))

	assert.Equal(t, 1.0, callCount(t, reg, "set_colormap", "ok"))
	assert.Equal(t, 2.0, callCount(t, reg, "set_colormap", "invalid"))
	assert.Contains(t, buf.String(), "validation failed")
	assert.Contains(t, buf.String(), "function=set_colormap")
}

func callCount(t *testing.T, reg *prometheus.Registry, function, result string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "carta_validation_calls_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["function"] == function && labels["result"] == result {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestValuesFloat(t *testing.T) {
	values := Values{
		"u8":   uint8(7),
		"u64":  uint64(9),
		"i16":  int16(-3),
		"f32":  float32(1.5),
		"json": json.Number("2.25"),
		"text": "4",
	}
	tests := []struct {
		name string
		want float64
		ok   bool
	}{
		{"u8", 7, true},
		{"u64", 9, true},
		{"i16", -3, true},
		{"f32", 1.5, true},
		{"json", 2.25, true},
		{"text", 0, false},
		{"missing", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := values.Float(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
