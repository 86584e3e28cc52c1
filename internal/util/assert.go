package util

import (
	"fmt"
	"os"
	"reflect"
)

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

// Assert terminates the process if cond is false. It is reserved for
// conditions that indicate a bug in this library itself, never for
// validating caller input (use the ex package and return an error for
// that).
func Assert(cond bool, msg string, args ...any) {
	if !cond {
		die(fmt.Sprintf("Assertion failed: "+msg, args...))
	}
}

// AssertType asserts that v holds a value of type T and returns it,
// terminating the process with a descriptive message otherwise.
func AssertType[T any](v any) T {
	t, ok := v.(T)
	if !ok {
		var zero T
		die(fmt.Sprintf("Type assertion failed: expected %s, got %s",
			reflect.TypeOf(zero), reflect.TypeOf(v)))
	}
	return t
}

// ShouldNotReachHere terminates the process; it marks a branch that
// correct callers can never trigger.
func ShouldNotReachHere() {
	die("Should not reach here")
}

// Unimplemented terminates the process, marking a code path intentionally
// left unbuilt.
func Unimplemented(what string) {
	die("Unimplemented: " + what)
}
