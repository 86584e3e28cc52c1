package dispatch

import (
	"reflect"

	"github.com/WB9292/tapable/internal/util"
)

// TapInfo is what a Tap interceptor callback observes about the tap about
// to run: enough to log or inspect, not enough to mutate (mutation happens
// only through Interceptor.Register at registration time).
type TapInfo struct {
	Name string
	Type TapType
}

func reflectValuesToAny(args []reflect.Value) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a.Interface()
	}
	return out
}

// fireCallInterceptors invokes every interceptor's Call callback in
// registration order, once per invocation, before any tap runs.
func fireCallInterceptors(interceptors []Interceptor, ctx *Context, args []reflect.Value) {
	plain := reflectValuesToAny(args)
	for _, ic := range interceptors {
		if ic.Call == nil {
			continue
		}
		callDynamic(ic.Call, ic.Context, ctx, plain...)
	}
}

// fireLoopInterceptors invokes every interceptor's Loop callback, once per
// looping-orchestration iteration.
func fireLoopInterceptors(interceptors []Interceptor, ctx *Context, args []reflect.Value) {
	plain := reflectValuesToAny(args)
	for _, ic := range interceptors {
		if ic.Loop == nil {
			continue
		}
		callDynamic(ic.Loop, ic.Context, ctx, plain...)
	}
}

// fireTapInterceptors invokes every interceptor's Tap callback, in
// registration order, immediately before t itself runs.
func fireTapInterceptors(interceptors []Interceptor, ctx *Context, t Tap) {
	info := TapInfo{Name: t.Name, Type: t.Type}
	for _, ic := range interceptors {
		if ic.Tap == nil {
			continue
		}
		callDynamic(ic.Tap, ic.Context, ctx, info)
	}
}

// callDynamic invokes fn with a leading ctx argument when wantsContext is
// set, else without it — the two declared shapes an interceptor callback
// may take (spec.md §3: "tap?(tap) (or (context, tap) if context: true)").
func callDynamic(fn any, wantsContext bool, ctx *Context, args ...any) {
	if !wantsContext {
		util.CallDynamic(fn, args...)
		return
	}
	full := append([]any{ctx}, args...)
	util.CallDynamic(fn, full...)
}
