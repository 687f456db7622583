package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateNumber(t *testing.T) {
	p := NewEvaluate(NumberFactory, 0, Attr("depth"), IncludeMin, Kw("step", 1))
	image := AttrMap{"depth": 10}

	assert.Equal(t,
		"a number greater than or equal to ``0`` and smaller than ``self.depth``, in increments of 1, evaluated at runtime",
		p.Description())

	assert.NoError(t, p.Validate(5, image))

	err := p.Validate(10, image)
	require.Error(t, err)
	assert.Equal(t, "10 is equal to upper bound 10, but must be smaller.", err.Error())

	err = p.Validate(1.5, image)
	require.Error(t, err)
	assert.Equal(t, "1.5 is not an increment of 1.", err.Error())
}

func TestEvaluateReadsLiveState(t *testing.T) {
	p := NewEvaluate(NumberFactory, 0, Attr("depth"), IncludeMin)
	depth := 2
	recv := ReceiverFunc(func(name string) (any, error) {
		if name != "depth" {
			return nil, errors.New("unknown")
		}
		return depth, nil
	})

	assert.Error(t, p.Validate(5, recv))
	depth = 10
	assert.NoError(t, p.Validate(5, recv))
}

func TestEvaluateAttributeErrors(t *testing.T) {
	p := NewEvaluate(NumberFactory, 0, Attr("depth"))

	assert.ErrorIs(t, p.Validate(5, nil), ErrAttribute)
	assert.ErrorIs(t, p.Validate(5, AttrMap{}), ErrAttribute)

	err := p.Validate(5, AttrMap{"depth": "ten"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShape)
	assert.Contains(t, err.Error(), "cannot construct Number descriptor")
}

func TestEvaluateOneOfUnpack(t *testing.T) {
	p := NewEvaluate(OneOfFactory, Attrs("polarizations"))
	image := AttrMap{"polarizations": []int{1, 2, 3}}

	assert.Equal(t, "one of *self.polarizations, evaluated at runtime", p.Description())
	assert.NoError(t, p.Validate(2, image))

	err := p.Validate(4, image)
	require.Error(t, err)
	assert.Equal(t, "4 is not one of 1, 2, 3", err.Error())

	assert.ErrorIs(t, p.Validate(2, AttrMap{"polarizations": 5}), ErrShape)
}

func TestEvaluateIterable(t *testing.T) {
	p := NewEvaluate(IterableFactory, NewNumber(), Kw("max_size", Attr("n")))

	assert.Equal(t, "an iterable with at most self.n elements in which each element is a number, evaluated at runtime", p.Description())
	assert.NoError(t, p.Validate([]int{1, 2}, AttrMap{"n": 2}))
	assert.ErrorIs(t, p.Validate([]int{1, 2, 3}, AttrMap{"n": 2}), ErrRange)
}

func TestEvaluateRejectsUnpackedKeyword(t *testing.T) {
	assert.Panics(t, func() {
		NewEvaluate(NumberFactory, Kw("max", Attrs("depths")))
	})
}

func TestNumberFactoryArguments(t *testing.T) {
	_, err := NumberFactory.New([]any{1, 2, Include, 1, 0, 7}, nil)
	assert.Error(t, err)

	_, err = NumberFactory.New([]any{1}, map[string]any{"min": 2})
	assert.Error(t, err)

	_, err = NumberFactory.New(nil, map[string]any{"bogus": 2})
	assert.Error(t, err)

	p, err := NumberFactory.New(nil, map[string]any{"min": 0, "max": 5})
	require.NoError(t, err)
	assert.Equal(t, "a number greater than or equal to ``0`` and smaller than or equal to ``5``", p.Description())
}

func TestEvaluateImpossibleArgumentsAreErrors(t *testing.T) {
	step := NewEvaluate(NumberFactory, 0, nil, Include, Attr("step"))
	var err error
	assert.NotPanics(t, func() { err = step.Validate(0, AttrMap{"step": 0}) })
	assert.ErrorIs(t, err, ErrShape)
	assert.NoError(t, step.Validate(4, AttrMap{"step": 2}))

	size := NewEvaluate(IterableFactory, NewNumber(), Kw("max_size", Attr("n")))
	assert.NotPanics(t, func() { err = size.Validate([]int{}, AttrMap{"n": -1}) })
	assert.ErrorIs(t, err, ErrShape)

	_, err = NumberFactory.New([]any{0, nil, Include, 0}, nil)
	assert.ErrorContains(t, err, "step must be positive")
}
