package validation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartavis/carta-go/core/units"
)

type label string

func TestStringSearchSemantics(t *testing.T) {
	assert.NoError(t, NewString("b", 0).Validate("abc", nil))
	assert.NoError(t, NewString("", 0).Validate(label("named"), nil))

	err := NewString("^b", 0).Validate("abc", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, "abc does not match ^b", err.Error())

	assert.ErrorIs(t, NewString("", 0).Validate(5, nil), ErrShape)
	assert.NoError(t, NewString("^abc$", IgnoreCase).Validate("ABC", nil))
	assert.Equal(t, "a string matching ``^abc$``", NewString("^abc$", IgnoreCase).Description())
	assert.Equal(t, "a string", NewString("", 0).Description())
}

func TestBoolean(t *testing.T) {
	b := NewBoolean()
	assert.NoError(t, b.Validate(true, nil))
	assert.NoError(t, b.Validate(false, nil))

	err := b.Validate(1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShape)
	assert.Equal(t, "1 is not a boolean value.", err.Error())

	loose := NewLooseBoolean()
	assert.NoError(t, loose.Validate(1, nil))
	assert.NoError(t, loose.Validate(0.0, nil))
	assert.Error(t, loose.Validate(2, nil))
	assert.Error(t, loose.Validate("true", nil))
}

func TestInstanceOf(t *testing.T) {
	p := NewInstanceOf(reflect.TypeOf((*units.AngularSize)(nil)).Elem())
	assert.Equal(t, "an instance of :obj:`units.AngularSize`", p.Description())
	assert.NoError(t, p.Validate(units.AngularSize{}, nil))

	err := p.Validate(3, nil)
	require.Error(t, err)
	assert.Equal(t, "3 has type int but an instance of :obj:`units.AngularSize` was expected.", err.Error())

	assert.Equal(t, "an instance of int or string",
		NewInstanceOf(reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem()).Description())
	assert.Equal(t, "an instance of int, string or bool",
		NewInstanceOf(reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(), reflect.TypeOf((*bool)(nil)).Elem()).Description())

	iface := NewInstanceOf(reflect.TypeOf((*error)(nil)).Elem())
	assert.NoError(t, iface.Validate(errors.New("x"), nil))
	assert.Error(t, iface.Validate(nil, nil))
}

func TestNoneParameter(t *testing.T) {
	p := NewNone()
	assert.NoError(t, p.Validate(nil, nil))
	assert.NoError(t, p.Validate((*int)(nil), nil))

	err := p.Validate(0, nil)
	require.Error(t, err)
	assert.Equal(t, "0 is not nil.", err.Error())
	assert.Equal(t, "``nil``", p.Description())
}
