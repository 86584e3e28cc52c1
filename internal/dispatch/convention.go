package dispatch

import (
	"reflect"
	"sync"

	"github.com/WB9292/tapable/eventual"
)

// compileSync binds the outer continuations for type="sync": onError
// returns the error to the caller (Go's idiom for "rethrow synchronously";
// there is no exception to propagate, only a value), onResult returns the
// value, onDone returns nil. Correctness depends on every tap in the
// snapshot completing before its invokeTap call returns — true for every
// sync tap, and true for an async/promise tap only if its implementation
// settles immediately; a tap that defers completion past its own call
// produces a zero result here, matching the source's behavior for the same
// misuse (spec.md §5: completion is driven only by tap behavior).
func compileSync(snap Snapshot, needsContext bool) SyncFunc {
	return func(args []reflect.Value) (any, error) {
		var ctx *Context
		if needsContext {
			ctx = NewContext()
		}
		var result any
		var outErr error
		runOrchestration(snap, ctx, args,
			func(err error) { outErr = err },
			func(v any) { result = v },
			func() {},
		)
		return result, outErr
	}
}

// compileAsync binds the outer continuations for type="async": all three
// route to the trailing completion callback, guarded to fire exactly once
// (spec.md §8 "completion exactness").
func compileAsync(snap Snapshot, needsContext bool) AsyncFunc {
	return func(args []reflect.Value, done func(error, any)) {
		var ctx *Context
		if needsContext {
			ctx = NewContext()
		}
		var once sync.Once
		runOrchestration(snap, ctx, args,
			func(err error) { once.Do(func() { done(err, nil) }) },
			func(v any) { once.Do(func() { done(nil, v) }) },
			func() { once.Do(func() { done(nil, nil) }) },
		)
	}
}

// compilePromise binds the outer continuations for type="promise": onError
// rejects, onResult/onDone resolve. spec.md's "sync-leak guard" exists in
// the source to stop a synchronous throw from escaping a JS Promise
// executor as a real exception instead of becoming a rejection before any
// .then is attached. eventual.Value has no such hazard: reject is a plain
// function call, never an exception, and Value.Then correctly observes an
// already-settled Value the same way it observes one that settles later
// (see eventual.Value.onSettle). The guard is therefore a synthesis detail
// of the source's runtime, not part of the observable contract this port
// must replicate (spec.md §9: "the spec requires the behavior, not the
// synthesis technique").
func compilePromise(snap Snapshot, needsContext bool) PromiseFunc {
	return func(args []reflect.Value) *eventual.Value {
		return eventual.NewValue(func(resolve func(any), reject func(error)) {
			var ctx *Context
			if needsContext {
				ctx = NewContext()
			}
			runOrchestration(snap, ctx, args,
				func(err error) { reject(err) },
				func(v any) { resolve(v) },
				func() { resolve(nil) },
			)
		})
	}
}
