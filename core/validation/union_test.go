package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionFirstMatchWins(t *testing.T) {
	u := NewUnion(NewNumber(), NewString(`^\d+$`, 0))

	assert.NoError(t, u.Validate(5, nil))
	assert.NoError(t, u.Validate("123", nil))

	err := u.Validate("abc", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, "abc is not a number or a string matching ``^\\d+$``.", err.Error())
}

func TestUnionCustomDescription(t *testing.T) {
	u := NewUnion(NewNumber(), NewBoolean()).Described("a flag or a level")

	err := u.Validate("x", nil)
	require.Error(t, err)
	assert.Equal(t, "x is not a flag or a level.", err.Error())
	assert.Equal(t, "a flag or a level", u.Description())
}

func TestUnionPropagatesAttributeErrors(t *testing.T) {
	u := NewUnion(NewEvaluate(NumberFactory, Attr("depth")), NewNumber())

	err := u.Validate(5, AttrMap{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttribute)
}

func TestNoneOr(t *testing.T) {
	p := NewNoneOr(NewNumber())

	assert.NoError(t, p.Validate(nil, nil))
	assert.NoError(t, p.Validate(3, nil))
	assert.Equal(t, "a number or ``nil``", p.Description())

	err := p.Validate("x", nil)
	require.Error(t, err)
	assert.Equal(t, "x is not a number or ``nil``.", err.Error())
}

func TestAllOptional(t *testing.T) {
	already := NewNoneOr(NewBoolean())
	params := AllOptional(NewNumber(), already)

	require.Len(t, params, 2)
	_, ok := params[0].(*NoneOr)
	assert.True(t, ok, "plain descriptor should be wrapped")
	assert.Same(t, already, params[1])
	assert.NoError(t, params[0].Validate(nil, nil))
}
