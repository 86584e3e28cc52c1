// Package ex provides the error-handling primitives used throughout this
// module: stack-capturing constructors for library-internal errors, and a
// Fatal/Fatalf pair reserved for unrecoverable conditions reached from a
// command entrypoint.
package ex

import (
	"errors"
	"fmt"
	"os"
	"runtime"
)

const maxFrames = 32

// stackfulError wraps an error (possibly nil, for a freshly created error)
// with the call stack captured at construction time.
type stackfulError struct {
	msg   string
	cause error
	frame []string
}

func (e *stackfulError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *stackfulError) Unwrap() error {
	return e.cause
}

func captureFrames(skip int) []string {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	out := make([]string, 0, n)
	for i := 0; ; i++ {
		f, more := frames.Next()
		out = append(out, fmt.Sprintf("[%d] %s:%d %s", i, f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return out
}

// New creates a new error carrying the current call stack.
func New(msg string) error {
	return &stackfulError{msg: msg, frame: captureFrames(1)}
}

// Newf creates a new formatted error carrying the current call stack.
func Newf(format string, args ...any) error {
	return &stackfulError{msg: fmt.Sprintf(format, args...), frame: captureFrames(1)}
}

// Wrap attaches the current call stack to err, preserving errors.Is/As
// compatibility with err through Unwrap.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &stackfulError{cause: err, frame: captureFrames(1)}
}

// Wrapf attaches a formatted message and the current call stack to err.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &stackfulError{msg: fmt.Sprintf(format, args...), cause: err, frame: captureFrames(1)}
}

// Fatal reports err and terminates the process. A stack-carrying error
// (one built with this package) is reported with its captured frames and
// exits with status 1. Any other error, including nil, indicates a bug in
// the caller and panics instead of exiting cleanly.
func Fatal(err error) {
	var se *stackfulError
	if err != nil && errors.As(err, &se) {
		printFatal(se)
		os.Exit(1)
	}
	panic(err)
}

// Fatalf formats a stack-carrying error and terminates the process with
// status 1.
func Fatalf(format string, args ...any) {
	se := &stackfulError{msg: fmt.Sprintf(format, args...), frame: captureFrames(1)}
	printFatal(se)
	os.Exit(1)
}

func printFatal(se *stackfulError) {
	fmt.Fprintln(os.Stderr, se.Error())
	fmt.Fprintln(os.Stderr, "Stack:")
	for _, fr := range se.frame {
		fmt.Fprintln(os.Stderr, fr)
	}
}
