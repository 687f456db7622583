package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shade string

type shadeEnum struct{}

func (shadeEnum) Name() string { return "validation.shade" }

func (shadeEnum) Members() []any {
	return []any{shade("viridis"), shade("magma"), shade("inferno")}
}

func TestOneOf(t *testing.T) {
	p := NewOneOf(1, 2, 3)
	assert.NoError(t, p.Validate(2.0, nil))
	assert.NoError(t, p.Validate(int64(3), nil))

	err := p.Validate(4, nil)
	require.Error(t, err)
	assert.Equal(t, "4 is not one of 1, 2, 3", err.Error())
	assert.Equal(t, "one of 1, 2, 3", p.Description())
}

func TestOneOfNormalize(t *testing.T) {
	p := NewOneOf("x", "y").Normalized(Lower)
	assert.NoError(t, p.Validate("X", nil))
	assert.Error(t, NewOneOf("x", "y").Validate("X", nil))
}

func TestConstant(t *testing.T) {
	p := NewConstant(shadeEnum{})

	assert.NoError(t, p.Validate("viridis", nil))
	assert.NoError(t, p.Validate(shade("magma"), nil))
	assert.Equal(t, "a member of :obj:`validation.shade`", p.Description())

	err := p.Validate("virdis", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a member of")

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "viridis", verr.Suggestion)
	assert.Equal(t, KindRange, verr.Kind)
}

func TestConstantExclude(t *testing.T) {
	p := NewConstant(shadeEnum{}, shade("magma"))

	assert.Equal(t, "a member of :obj:`validation.shade` excluding ``'magma'``", p.Description())
	assert.Error(t, p.Validate("magma", nil))
	assert.NoError(t, p.Validate("inferno", nil))
	assert.Equal(t, []any{shade("viridis"), shade("inferno")}, p.Options())
}

func TestConstantJSONSchema(t *testing.T) {
	s := NewConstant(shadeEnum{}).JSONSchema()
	assert.Equal(t, []any{"viridis", "magma", "inferno"}, s["enum"])
}
