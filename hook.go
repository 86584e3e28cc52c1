// Package tapable implements a pluggable hook system: named extension
// points ("hooks") to which callbacks ("taps") attach, invoked under a
// chosen orchestration (series, looping, parallel) and calling convention
// (sync, async, promise). See the flavors package for the five standard
// hook shapes built on top of this base.
package tapable

import (
	"reflect"

	"github.com/WB9292/tapable/eventual"
	"github.com/WB9292/tapable/internal/dispatch"
)

// Hook is the ordered tap registry and interceptor pipeline (spec.md's
// "C1"). A zero-orchestration Hook (one built directly with New, never
// routed through a flavors constructor) compiles to AbstractOverride when
// invoked — flavors.BasicHook and friends are the concrete, callable forms.
type Hook struct {
	args []string
	name string

	taps         []Tap
	interceptors []Interceptor

	orchestration dispatch.Orchestration
	bail          bool
	waterfall     bool

	alignInterceptorRegisterSemantics bool

	compiledSync    dispatch.SyncFunc
	compiledAsync   dispatch.AsyncFunc
	compiledPromise dispatch.PromiseFunc
}

// New creates a Hook declaring the given argument names (arity; otherwise
// opaque, per spec.md §6) and an optional name.
func New(args []string, name ...string) *Hook {
	h := &Hook{args: append([]string(nil), args...)}
	if len(name) > 0 {
		h.name = name[0]
	}
	return h
}

// Name returns the hook's name, or "" if none was given.
func (h *Hook) Name() string { return h.name }

// AlignInterceptorRegisterSemantics opts into the bugfix spec.md §9 flags:
// Intercept's existing-taps fold treats a nil Register return as "keep"
// (like the registration-time fold) instead of unconditionally overwriting
// the tap with nil. Off by default, for fidelity with the source.
func (h *Hook) AlignInterceptorRegisterSemantics(v bool) {
	h.alignInterceptorRegisterSemantics = v
}

// setOrchestration is used by the flavors package to turn an abstract Hook
// into a concrete one. Most callers should construct hooks through flavors
// instead of calling this directly.
func (h *Hook) setOrchestration(o dispatch.Orchestration, bail, waterfall bool) {
	h.orchestration = o
	h.bail = bail
	h.waterfall = waterfall
	h.invalidate()
}

func (h *Hook) invalidate() {
	h.compiledSync = nil
	h.compiledAsync = nil
	h.compiledPromise = nil
}

func (h *Hook) snapshot() dispatch.Snapshot {
	taps := make([]dispatch.Tap, len(h.taps))
	for i, t := range h.taps {
		taps[i] = dispatch.Tap{Name: t.Name, Type: t.Type, Fn: t.Fn, Context: t.Context}
	}
	interceptors := make([]dispatch.Interceptor, len(h.interceptors))
	for i, ic := range h.interceptors {
		interceptors[i] = dispatch.Interceptor{Call: ic.Call, Tap: ic.Tap, Loop: ic.Loop, Context: ic.Context}
	}
	return dispatch.Snapshot{
		Taps:          taps,
		Interceptors:  interceptors,
		Args:          h.args,
		Orchestration: h.orchestration,
		Bail:          h.bail,
		Waterfall:     h.waterfall,
	}
}

func (h *Hook) register(typ TapType, optsOrName any, fn any) error {
	opts, err := optionsFromAny(optsOrName)
	if err != nil {
		return err
	}
	t, err := toTap(opts, typ, fn)
	if err != nil {
		return err
	}
	if t.Context {
		warnContextDeprecated()
	}
	t = runRegisterInterceptors(h.interceptors, t)

	h.invalidate()
	h.taps = insertTap(h.taps, t)
	return nil
}

// Tap registers a synchronous tap. opts may be a bare string (treated as
// {Name: s}) or a TapOptions value.
func (h *Hook) Tap(opts any, fn any) error { return h.register(Sync, opts, fn) }

// TapAsync registers an async tap; fn must accept the hook's args plus a
// trailing func(error, any) completion continuation.
func (h *Hook) TapAsync(opts any, fn any) error { return h.register(Async, opts, fn) }

// TapPromise registers a promise tap; fn must return a *eventual.Value.
func (h *Hook) TapPromise(opts any, fn any) error { return h.register(Promise, opts, fn) }

// MustTap panics if Tap returns an error. Intended for package-init-time
// registration where a bad name/options is a programmer bug, not a
// runtime condition to handle.
func (h *Hook) MustTap(opts any, fn any) {
	if err := h.Tap(opts, fn); err != nil {
		panic(err)
	}
}

// MustTapAsync panics if TapAsync returns an error.
func (h *Hook) MustTapAsync(opts any, fn any) {
	if err := h.TapAsync(opts, fn); err != nil {
		panic(err)
	}
}

// MustTapPromise panics if TapPromise returns an error.
func (h *Hook) MustTapPromise(opts any, fn any) {
	if err := h.TapPromise(opts, fn); err != nil {
		panic(err)
	}
}

// Intercept appends interceptor to the pipeline and resets the dispatcher
// slots. If interceptor defines Register, it is immediately applied to
// every existing tap in place (spec.md §4.1's documented asymmetry: unlike
// the registration-time fold, this path overwrites a tap with nil unless
// AlignInterceptorRegisterSemantics is set).
func (h *Hook) Intercept(interceptor Interceptor) {
	h.invalidate()
	h.interceptors = append(h.interceptors, interceptor)

	if interceptor.Register == nil {
		return
	}
	for i, t := range h.taps {
		replaced := callRegister(interceptor.Register, t)
		if replaced != nil {
			h.taps[i] = *replaced
		} else if !h.alignInterceptorRegisterSemantics {
			h.taps[i] = Tap{}
		}
	}
}

// IsUsed reports whether any tap or interceptor has been registered.
func (h *Hook) IsUsed() bool {
	return len(h.taps) > 0 || len(h.interceptors) > 0
}

func (h *Hook) ensureSync() (dispatch.SyncFunc, error) {
	if h.compiledSync != nil {
		return h.compiledSync, nil
	}
	d, err := dispatch.Compile(h.snapshot(), dispatch.ConvSync)
	if err != nil {
		return nil, err
	}
	h.compiledSync = d.(dispatch.SyncFunc)
	return h.compiledSync, nil
}

func (h *Hook) ensureAsync() (dispatch.AsyncFunc, error) {
	if h.compiledAsync != nil {
		return h.compiledAsync, nil
	}
	d, err := dispatch.Compile(h.snapshot(), dispatch.ConvAsync)
	if err != nil {
		return nil, err
	}
	h.compiledAsync = d.(dispatch.AsyncFunc)
	return h.compiledAsync, nil
}

func (h *Hook) ensurePromise() (dispatch.PromiseFunc, error) {
	if h.compiledPromise != nil {
		return h.compiledPromise, nil
	}
	d, err := dispatch.Compile(h.snapshot(), dispatch.ConvPromise)
	if err != nil {
		return nil, err
	}
	h.compiledPromise = d.(dispatch.PromiseFunc)
	return h.compiledPromise, nil
}

func toReflectValues(args []any) []reflect.Value {
	out := make([]reflect.Value, len(args))
	for i, a := range args {
		out[i] = reflect.ValueOf(a)
	}
	return out
}

// Call invokes the hook synchronously, returning the orchestration's final
// result (possibly nil) or its error.
func (h *Hook) Call(args ...any) (any, error) {
	fn, err := h.ensureSync()
	if err != nil {
		return nil, err
	}
	return fn(toReflectValues(args))
}

// CallAsync invokes the hook under the async calling convention. cb is
// called exactly once with the orchestration's outcome.
func (h *Hook) CallAsync(args []any, cb func(error, any)) {
	fn, err := h.ensureAsync()
	if err != nil {
		cb(err, nil)
		return
	}
	fn(toReflectValues(args), cb)
}

// Promise invokes the hook under the promise calling convention, returning
// an eventual.Value that resolves or rejects with the orchestration's
// outcome.
func (h *Hook) Promise(args ...any) *eventual.Value {
	fn, err := h.ensurePromise()
	if err != nil {
		return eventual.Rejected(err)
	}
	return fn(toReflectValues(args))
}
