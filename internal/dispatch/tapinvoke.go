package dispatch

import (
	"reflect"

	"github.com/WB9292/tapable/eventual"
	"github.com/WB9292/tapable/internal/ex"
	"github.com/WB9292/tapable/internal/util"
)

// reflectArgs prepends ctx to args when the tap opted into Context.
func reflectArgs(ctx *Context, args []reflect.Value, wantsContext bool) []reflect.Value {
	if !wantsContext {
		return args
	}
	full := make([]reflect.Value, 0, len(args)+1)
	full = append(full, reflect.ValueOf(ctx))
	return append(full, args...)
}

// reflectCallRecover invokes fn(args...) via reflection, converting a panic
// into an error the way the source's try/catch around a tap's invocation
// does (spec.md §4.2 "wrap in a try/catch, on catch call onError").
//
// args may contain invalid reflect.Value entries (what reflect.ValueOf(nil)
// produces, for a caller-supplied untyped nil argument); those are widened
// to the zero value of fn's matching parameter type, the same convention
// internal/util.CallDynamic uses for interceptor dispatch, so a nil argument
// never has to be special-cased by the tap.
func reflectCallRecover(fn any, args []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ex.Newf("tap panicked: %v", r)
		}
	}()
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if !a.IsValid() && i < ft.NumIn() {
			in[i] = reflect.Zero(ft.In(i))
			continue
		}
		in[i] = a
	}
	out = fv.Call(in)
	return out, nil
}

// invokeTap dispatches a single tap by its calling convention, routing the
// outcome to exactly one of onError/onResult/onDone (onResult only when the
// tap produced a non-nil result; spec.md's "non-undefined result").
func invokeTap(t Tap, ctx *Context, args []reflect.Value, onError func(error), onResult func(any), onDone func()) {
	callArgs := reflectArgs(ctx, args, t.Context)

	switch t.Type {
	case Sync:
		invokeSyncTap(t, callArgs, onError, onResult, onDone)
	case Async:
		invokeAsyncTap(t, callArgs, onError, onResult, onDone)
	case Promise:
		invokePromiseTap(t, callArgs, onError, onResult, onDone)
	default:
		util.ShouldNotReachHere()
	}
}

// invokeSyncTap accepts fn of shape func(...) / func(...) error /
// func(...) T (any single non-error return) / func(...) (T, error). A tap
// returning more than two values is a registration bug reported through the
// normal error channel rather than a process abort, since it is reachable
// from caller-supplied code rather than an internal invariant.
func invokeSyncTap(t Tap, callArgs []reflect.Value, onError func(error), onResult func(any), onDone func()) {
	out, err := reflectCallRecover(t.Fn, callArgs)
	if err != nil {
		onError(err)
		return
	}
	switch len(out) {
	case 0:
		onDone()
	case 1:
		v := out[0].Interface()
		if e, ok := v.(error); ok {
			if e != nil {
				onError(e)
				return
			}
			onDone()
			return
		}
		if v == nil {
			onDone()
			return
		}
		onResult(v)
	case 2:
		result := out[0].Interface()
		if e, ok := out[1].Interface().(error); ok && e != nil {
			onError(e)
			return
		}
		if result == nil {
			onDone()
			return
		}
		onResult(result)
	default:
		onError(ex.Newf("tapable: sync tap %q returned %d values, expected 0, 1, or (value, error)", t.Name, len(out)))
	}
}

// invokeAsyncTap calls fn with callArgs plus a trailing func(error, any)
// completion continuation, matching spec.md's "fn receives (...args,
// callback)".
func invokeAsyncTap(t Tap, callArgs []reflect.Value, onError func(error), onResult func(any), onDone func()) {
	done := func(err error, result any) {
		if err != nil {
			onError(err)
			return
		}
		if result == nil {
			onDone()
			return
		}
		onResult(result)
	}

	full := append(append([]reflect.Value(nil), callArgs...), reflect.ValueOf(done))
	if _, err := reflectCallRecover(t.Fn, full); err != nil {
		onError(err)
	}
}

// invokePromiseTap calls fn and requires its return value to be a
// *eventual.Value, failing with NonPromiseReturn otherwise.
func invokePromiseTap(t Tap, callArgs []reflect.Value, onError func(error), onResult func(any), onDone func()) {
	out, err := reflectCallRecover(t.Fn, callArgs)
	if err != nil {
		onError(err)
		return
	}
	if len(out) != 1 {
		onError(ex.Newf("Tap function (tapPromise) did not return promise (returned %d values)", len(out)))
		return
	}
	got := out[0].Interface()
	val, ok := got.(*eventual.Value)
	if !ok || val == nil {
		onError(ex.Newf("Tap function (tapPromise) did not return promise (returned %v)", got))
		return
	}
	val.Then(
		func(v any) (any, error) {
			if v == nil {
				onDone()
			} else {
				onResult(v)
			}
			return v, nil
		},
		func(e error) (any, error) {
			onError(e)
			return nil, e
		},
	)
}
