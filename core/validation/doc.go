// Package validation provides composable parameter descriptors.
//
// A descriptor pairs a validation rule with a human-readable description of
// that rule. Descriptors are immutable once constructed and may be shared
// between goroutines; the only per-call input is the Receiver, which deferred
// descriptors (Evaluate) read to resolve live object state such as the
// number of channels in the currently open image.
//
// Leaf descriptors check a single value:
//
//	NewString("^[a-z]+$", 0)          // string matching a pattern
//	NewNumber(Min(0), Max(1))         // bounded number
//	NewBoolean()                      // true or false
//	NewOneOf("x", "y")                // membership
//	NewConstant(constants.Colormap)   // enum membership
//
// Combinators compose other descriptors:
//
//	NewUnion(NewNumber(), NewString("", 0))
//	NewNoneOr(NewNumber())            // optional number
//	NewIterableOf(NewNumber(), MinSize(2), MaxSize(2))
//	NewMapOf(NewString("", 0), NewNumber())
//
// Domain descriptors (Size, Coordinate, Color) accept the string grammars
// understood by the frontend.
//
// Validate returns nil or an error whose message is suitable for a user.
// Errors produced by this package are *Error values and can be classified
// with errors.Is against ErrShape, ErrRange, ErrExhausted and ErrAttribute.
package validation
