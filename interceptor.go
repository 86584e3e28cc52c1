package tapable

import "github.com/WB9292/tapable/internal/util"

// Interceptor is a cross-cutting observer attached with Hook.Intercept. Each
// callback is stored as `any` because its exact shape varies by one leading
// *Context argument depending on Context: dispatched dynamically via
// internal/util.CallDynamic, the same technique this module's dispatcher
// uses for per-tap invocation.
//
//   - Register: func(Tap) *Tap. A nil return leaves the running descriptor
//     unchanged (at registration time; see Hook.Intercept for the
//     documented registration-vs-intercept asymmetry).
//   - Call:     func(args ...any), or func(*Context, args ...any).
//   - Tap:      func(TapInfo), or func(*Context, TapInfo). TapInfo, not
//     Tap: interceptors observe a tap about to run, they don't receive the
//     full registration descriptor (Before/Stage/Extra aren't meaningful
//     once a tap is inserted and about to be called).
//   - Loop:     func(args ...any), or func(*Context, args ...any).
type Interceptor struct {
	Register any
	Call     any
	Tap      any
	Loop     any
	Context  bool
}

// callRegister invokes an interceptor's Register callback against t,
// returning the replacement descriptor or nil if the callback returned nil
// (spec.md's "tap|undefined").
func callRegister(fn any, t Tap) *Tap {
	out := util.CallDynamic(fn, t)
	if len(out) == 0 {
		return nil
	}
	replaced, ok := out[0].(*Tap)
	if !ok {
		return nil
	}
	return replaced
}
