package validation

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure.
type Kind int

const (
	// KindShape is a value of the wrong primitive type.
	KindShape Kind = iota
	// KindRange is a value of the right type that is out of bounds,
	// misaligned or fails a grammar.
	KindRange
	// KindExhausted is a union whose every branch failed.
	KindExhausted
	// KindAttribute is a receiver attribute that could not be resolved.
	KindAttribute
)

// String returns the string representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindRange:
		return "range"
	case KindExhausted:
		return "exhausted"
	case KindAttribute:
		return "attribute"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors for errors.Is classification.
var (
	ErrShape     = errors.New("validation: shape error")
	ErrRange     = errors.New("validation: range error")
	ErrExhausted = errors.New("validation: no option matched")
	ErrAttribute = errors.New("validation: attribute error")
)

// Error is a validation failure.
type Error struct {
	Kind    Kind
	Message string

	// Suggestion is a close match for a rejected string, if one exists.
	Suggestion string

	cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s Did you mean '%s'?", e.Message, e.Suggestion)
	}
	return e.Message
}

// Is matches the sentinel error for the failure kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrShape:
		return e.Kind == KindShape
	case ErrRange:
		return e.Kind == KindRange
	case ErrExhausted:
		return e.Kind == KindExhausted
	case ErrAttribute:
		return e.Kind == KindAttribute
	}
	return false
}

// Unwrap returns the underlying parse or lookup error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

func shapeError(format string, args ...any) *Error {
	return &Error{Kind: KindShape, Message: fmt.Sprintf(format, args...)}
}

func rangeError(format string, args ...any) *Error {
	return &Error{Kind: KindRange, Message: fmt.Sprintf(format, args...)}
}

func attributeError(cause error, name string) *Error {
	return &Error{
		Kind:    KindAttribute,
		Message: fmt.Sprintf("cannot resolve attribute %q: %v", name, cause),
		cause:   cause,
	}
}
