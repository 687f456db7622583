package schema

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartavis/carta-go/core/constants"
	"github.com/cartavis/carta-go/core/signature"
	"github.com/cartavis/carta-go/core/validation"
)

func TestForParameterNumber(t *testing.T) {
	p := validation.NewNumber(validation.Min(0), validation.Max(20),
		validation.WithInterval(validation.IncludeMin), validation.Step(1))

	got := ForParameter(p)
	want := Document{
		"type":             "number",
		"minimum":          0.0,
		"exclusiveMaximum": 20.0,
		"multipleOf":       1.0,
		"description":      p.Description(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ForParameter mismatch (-want +got):\n%s", diff)
	}
}

func TestForParameterAnnotatesFormats(t *testing.T) {
	got := ForParameter(validation.NewSize())

	branches, ok := got["anyOf"].([]any)
	require.True(t, ok)
	require.Len(t, branches, 2)
	str, ok := branches[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, string(FormatAngularSize), str["format"])
	assert.Equal(t, string(FormatAngularSize), str[FormatExtension])
}

func colormapSignature() *signature.Signature {
	return signature.Build("set_colormap").
		Param("colormap", validation.NewConstant(constants.Colormaps)).Done().
		Param("invert", validation.NewBoolean()).Default(false).Done().
		Doc("Set the colormap.\n\ncolormap : {0}").
		Since("v1.1").
		Signature()
}

func TestForSignature(t *testing.T) {
	doc := ForSignature(colormapSignature())

	assert.Equal(t, Draft, doc["$schema"])
	assert.Equal(t, "set_colormap", doc["title"])
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, []any{"colormap"}, doc["required"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.Equal(t, "v1.1.0", doc["x-carta-since"])
	assert.Equal(t, "Set the colormap.\n\ncolormap : *a member of* constants.Colormap", doc["description"])

	props := doc["properties"].(map[string]any)
	invert := props["invert"].(map[string]any)
	assert.Equal(t, false, invert["default"])
	assert.NotContains(t, props["colormap"], "default")
}

func TestValidateSignature(t *testing.T) {
	v := NewValidator(nil)
	sig := colormapSignature()

	tests := []struct {
		name    string
		args    map[string]any
		wantErr bool
	}{
		{"valid", map[string]any{"colormap": "viridis", "invert": true}, false},
		{"default omitted", map[string]any{"colormap": "magma"}, false},
		{"typed member", map[string]any{"colormap": constants.Inferno}, false},
		{"unknown member", map[string]any{"colormap": "not-a-colormap"}, true},
		{"missing required", map[string]any{"invert": true}, true},
		{"unexpected property", map[string]any{"colormap": "viridis", "invrt": true}, true},
		{"wrong type", map[string]any{"colormap": "viridis", "invert": "yes"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSignature(sig, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDocument)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCustomFormats(t *testing.T) {
	v := NewValidator(nil)

	tests := []struct {
		name  string
		param validation.Parameter
		value any
		valid bool
	}{
		{"size number", validation.NewSize(), 1.5, true},
		{"size arcmin", validation.NewSize(), "2arcmin", true},
		{"size pixels", validation.NewSize(), "123 pixels", true},
		{"size unknown unit", validation.NewSize(), "2 parsecs", false},
		{"coordinate hms", validation.NewCoordinate(), "12:34:56.7", true},
		{"coordinate degrees", validation.NewCoordinate(), "10deg", true},
		{"coordinate garbage", validation.NewCoordinate(), "north", false},
		{"color name", validation.NewColor(), "red", true},
		{"color hex", validation.NewColor(), "#FF0000", true},
		{"color tuple", validation.NewColor(), "rgb(255, 0, 0)", true},
		{"color tuple out of range", validation.NewColor(), "rgb(300, 0, 0)", false},
		{"optional nil", validation.NewNoneOr(validation.NewSize()), nil, true},
		{"iterable", validation.NewIterableOf(validation.NewNumber(), validation.MinSize(2)), []int{1, 2}, true},
		{"iterable too short", validation.NewIterableOf(validation.NewNumber(), validation.MinSize(2)), []int{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ForParameter(tt.param), tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDocument)
			}
		})
	}
}

func TestSchemaAgreesWithDescriptor(t *testing.T) {
	v := NewValidator(nil)
	p := validation.NewNumber(validation.Min(0), validation.Max(1), validation.WithInterval(validation.Include))

	for _, value := range []any{-0.5, 0, 0.5, 1, 1.5} {
		descErr := p.Validate(value, nil)
		schemaErr := v.Validate(ForParameter(p), value)
		assert.Equal(t, descErr == nil, schemaErr == nil, "value %v", value)
	}
}

func TestValidatorCachesCompiledSchemas(t *testing.T) {
	v := NewValidator(nil)
	sig := colormapSignature()

	require.NoError(t, v.ValidateSignature(sig, map[string]any{"colormap": "viridis"}))
	require.NoError(t, v.ValidateSignature(sig, map[string]any{"colormap": "magma"}))
	assert.Equal(t, 1, v.CacheSize())

	require.NoError(t, v.Validate(ForParameter(validation.NewBoolean()), true))
	assert.Equal(t, 2, v.CacheSize())

	uncached := NewValidator(&ValidationConfig{
		MaxSchemaSize:  1 << 20,
		MaxSchemaDepth: 10,
		AssertFormat:   true,
	})
	require.NoError(t, uncached.Validate(ForParameter(validation.NewBoolean()), false))
	assert.Equal(t, 0, uncached.CacheSize())
}

func TestDigest(t *testing.T) {
	a, err := Digest(map[string]any{"type": "number", "minimum": 0.0})
	require.NoError(t, err)
	b, err := Digest(map[string]any{"minimum": 0.0, "type": "number"})
	require.NoError(t, err)
	c, err := Digest(map[string]any{"type": "number", "minimum": 1.0})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestLimits(t *testing.T) {
	nested := validation.NewIterableOf(validation.NewIterableOf(validation.NewIterableOf(validation.NewNumber())))
	doc := ForParameter(nested)
	assert.Equal(t, 3, Depth(doc))

	cfg := DefaultValidationConfig()
	cfg.MaxSchemaDepth = 2
	err := NewValidator(cfg).Validate(doc, [][][]int{{{1}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema too deep")

	cfg = DefaultValidationConfig()
	cfg.MaxSchemaSize = 16
	err = NewValidator(cfg).Validate(ForParameter(validation.NewColor()), "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema too large")
}

func TestRemoteRefRejected(t *testing.T) {
	doc := Document{"$ref": "https://example.com/schema.json"}
	err := NewValidator(nil).Validate(doc, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema compilation failed")
}

func TestFormats(t *testing.T) {
	for _, f := range Formats() {
		assert.True(t, IsCartaFormat(f), f)
	}
	assert.False(t, IsCartaFormat("email"))
}

func TestValidateNormalizesGoValues(t *testing.T) {
	v := NewValidator(nil)
	doc := ForParameter(validation.NewIterableOf(
		validation.NewNumber(validation.Min(0), validation.Max(255), validation.Step(1))))

	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"unsigned ints", []uint16{0, 128, 255}, true},
		{"json numbers", []json.Number{"1", "254"}, true},
		{"int64 above max", []int64{256}, false},
		{"fraction", []float64{1.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(doc, tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDocument)
			}
		})
	}
}
