package units

import "errors"

var (
	// ErrUnrecognizedFormat is wrapped by errors for strings that match no
	// accepted grammar.
	ErrUnrecognizedFormat = errors.New("unrecognized format")

	// ErrOutOfRange is wrapped by errors for well-formed coordinates outside
	// the range permitted for their axis.
	ErrOutOfRange = errors.New("out of range")
)

// ParseError describes a string that could not be parsed as a size,
// pixel value or coordinate.
type ParseError struct {
	Value string // Input that failed
	Err   error  // ErrUnrecognizedFormat or ErrOutOfRange
	Msg   string // Human-readable reason
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return e.Msg
}

// Unwrap allows errors.Is against the sentinel errors
func (e *ParseError) Unwrap() error {
	return e.Err
}
