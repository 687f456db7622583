package invariant_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cartavis/carta-go/core/invariant"
)

// expectPanic runs fn and returns the recovered panic message.
func expectPanic(t *testing.T, fn func()) string {
	t.Helper()
	var msg string
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic")
			}
			msg = fmt.Sprintf("%v", r)
		}()
		fn()
	}()
	return msg
}

func TestPreconditionPass(t *testing.T) {
	invariant.Precondition(true, "this should pass")
	invariant.Precondition(1 <= 2, "ordering works")
}

func TestPreconditionFail(t *testing.T) {
	msg := expectPanic(t, func() {
		invariant.Precondition(false, "min %v must not exceed max %v", 5, 1)
	})
	if !strings.Contains(msg, "PRECONDITION VIOLATION") {
		t.Errorf("expected PRECONDITION VIOLATION, got: %s", msg)
	}
	if !strings.Contains(msg, "min 5 must not exceed max 1") {
		t.Errorf("expected formatted message, got: %s", msg)
	}
	if !strings.Contains(msg, "at ") {
		t.Errorf("expected stack trace context, got: %s", msg)
	}
}

func TestInvariantFail(t *testing.T) {
	msg := expectPanic(t, func() {
		invariant.Invariant(false, "token %q registered twice", "deg")
	})
	if !strings.Contains(msg, "INVARIANT VIOLATION") {
		t.Errorf("expected INVARIANT VIOLATION, got: %s", msg)
	}
}

func TestNotNil(t *testing.T) {
	invariant.NotNil("value", "value")

	msg := expectPanic(t, func() { invariant.NotNil(nil, "param") })
	if !strings.Contains(msg, "param must not be nil") {
		t.Errorf("unexpected message: %s", msg)
	}

	var typed *strings.Builder
	expectPanic(t, func() { invariant.NotNil(typed, "builder") })
}

func TestFinite(t *testing.T) {
	invariant.Finite(1.5, "step")
	expectPanic(t, func() { invariant.Finite(math.NaN(), "min") })
	expectPanic(t, func() { invariant.Finite(math.Inf(1), "max") })
}

func TestPositive(t *testing.T) {
	invariant.Positive(0.1, "step")
	expectPanic(t, func() { invariant.Positive(0, "step") })
	expectPanic(t, func() { invariant.Positive(math.NaN(), "step") })
}

func TestNonNegative(t *testing.T) {
	invariant.NonNegative(0, "min_size")
	expectPanic(t, func() { invariant.NonNegative(-1, "min_size") })
}

func TestExpectNoError(t *testing.T) {
	invariant.ExpectNoError(nil, "compile")
	msg := expectPanic(t, func() { invariant.ExpectNoError(errors.New("boom"), "compile") })
	if !strings.Contains(msg, "POSTCONDITION VIOLATION: compile must not fail: boom") {
		t.Errorf("unexpected message: %s", msg)
	}
}
