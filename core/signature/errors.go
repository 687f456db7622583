package signature

import "fmt"

// FailureKind classifies a ValidationFailed.
type FailureKind int

const (
	// FailureInvalid is an argument rejected by its descriptor.
	FailureInvalid FailureKind = iota
	// FailureUnexpected is a keyword argument with no matching parameter.
	FailureUnexpected
	// FailureDuplicate is an argument given both positionally and by name.
	FailureDuplicate
	// FailureMissing is an omitted argument without a default.
	FailureMissing
	// FailureTooMany is a call with more positional arguments than
	// parameters.
	FailureTooMany
)

// ValidationFailed is the single error returned for any argument that does
// not satisfy its signature.
type ValidationFailed struct {
	Kind      FailureKind
	Function  string
	Parameter string

	// Reason is the descriptor message with documentation markup removed.
	Reason string

	// Suggestion is a close parameter name for unexpected keywords.
	Suggestion string

	Err error
}

// Error implements the error interface
func (e *ValidationFailed) Error() string {
	switch e.Kind {
	case FailureUnexpected:
		msg := fmt.Sprintf("Unexpected keyword parameter passed to %s: %s", e.Function, e.Parameter)
		if e.Suggestion != "" {
			msg += fmt.Sprintf(". Did you mean '%s'?", e.Suggestion)
		}
		return msg
	case FailureDuplicate:
		return fmt.Sprintf("Duplicate parameter passed to %s: %s", e.Function, e.Parameter)
	case FailureMissing:
		return fmt.Sprintf("Missing required parameter passed to %s: %s", e.Function, e.Parameter)
	case FailureTooMany:
		return fmt.Sprintf("Too many positional parameters passed to %s: %s", e.Function, e.Reason)
	default:
		return fmt.Sprintf("Invalid function parameter passed to %s: %s", e.Function, e.Reason)
	}
}

// Unwrap returns the descriptor error, if any.
func (e *ValidationFailed) Unwrap() error {
	return e.Err
}
