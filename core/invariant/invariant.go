// Package invariant provides contract assertions for descriptor and registry
// construction.
//
// A descriptor that is built with impossible bounds (min above max, a zero
// step, an unknown unit token) is a programming error in the code that
// declares a method signature, not a user error in the value being
// validated. These helpers panic so that such mistakes surface when the
// signature is declared instead of on the first call.
//
// Validation failures of user-supplied values are always returned as errors
// by core/validation and never reach this package.
package invariant

import (
	"fmt"
	"math"
	"reflect"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func Number(minVal, maxVal float64) *NumberParam {
//	    invariant.Precondition(minVal <= maxVal, "min %v must not exceed max %v", minVal, maxVal)
//	    // ...
//	}
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Invariant checks an internal consistency rule, such as a registry that
// must map every token to exactly one unit.
// Panics with INVARIANT VIOLATION if condition is false.
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// NotNil panics if value is nil, including typed nils such as (*T)(nil)
// stored in an interface.
//
// Example:
//
//	func IterableOf(param Parameter) *IterableParam {
//	    invariant.NotNil(param, "param")
//	    // ...
//	}
func NotNil(value any, name string) {
	if isNilValue(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

// isNilValue reports whether value is nil or a typed nil.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// Finite panics if value is NaN or infinite.
// Bounds, steps and unit factors must all be finite.
func Finite(value float64, name string) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		fail("PRECONDITION", "%s must be finite, got %v", name, value)
	}
}

// Positive panics if value <= 0.
//
// Example:
//
//	invariant.Positive(step, "step")
func Positive(value float64, name string) {
	if !(value > 0) {
		fail("PRECONDITION", "%s must be positive, got %v", name, value)
	}
}

// NonNegative panics if value < 0. Used for cardinality bounds.
func NonNegative(value int, name string) {
	if value < 0 {
		fail("PRECONDITION", "%s must not be negative, got %d", name, value)
	}
}

// ExpectNoError panics if err is not nil.
// This is a postcondition check for operations that cannot fail on
// well-formed static input, such as compiling a regular expression built
// from a fixed unit table.
func ExpectNoError(err error, msg string) {
	if err != nil {
		fail("POSTCONDITION", "%s must not fail: %v", msg, err)
	}
}

// fail panics with a formatted message including call stack context.
func fail(kind, format string, args ...any) {
	// Skip fail() and the exported wrapper.
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]any{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
