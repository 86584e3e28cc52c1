// Package dispatch is the dynamic dispatcher compiler (spec.md's "C2"): it
// takes a snapshot of a hook's taps and interceptors and a chosen
// orchestration, and produces closures that invoke every tap in order under
// that orchestration, threading results, errors, and interceptor callbacks
// through the onError/onResult/onDone continuation protocol (spec.md §4.2).
//
// Rather than synthesizing and compiling source text at runtime (which Go
// cannot do without shelling out to an external toolchain), this factory
// builds a tree of closures parameterized by the continuation protocol —
// the portable reimplementation spec.md §9 explicitly sanctions. Dynamic
// per-tap dispatch (arbitrary arity/type per tap) uses reflect.Value.Call,
// the same technique this module's reflect-indexed interceptor dispatch
// (internal/util.CallDynamic) and DataDog dd-trace-go's appsec/dyngo event
// manager use for listener invocation of unknown shape.
package dispatch

import (
	"reflect"

	"github.com/WB9292/tapable/eventual"
	"github.com/WB9292/tapable/internal/ex"
)

// TapType identifies a tap's calling convention. It's defined here, not in
// the root package, because tapable.TapType is an alias of this type
// (tapable imports this package, not the reverse, so defining it here and
// aliasing outward avoids an import cycle).
type TapType int

const (
	Sync TapType = iota
	Async
	Promise
)

func (t TapType) String() string {
	switch t {
	case Sync:
		return "sync"
	case Async:
		return "async"
	case Promise:
		return "promise"
	default:
		return "unknown"
	}
}

// Tap is the execution-relevant projection of a tap descriptor: the factory
// doesn't need Before/Stage/Extra, only what it takes to invoke the
// function.
type Tap struct {
	Name    string
	Type    TapType
	Fn      any
	Context bool
}

// Interceptor is the execution-relevant projection of an interceptor
// descriptor.
type Interceptor struct {
	Call    any
	Tap     any
	Loop    any
	Context bool
}

// Orchestration selects which of the three composable templates a
// dispatcher's body is built from. Abstract is the zero value: a Hook built
// directly with tapable.New, with no flavor's orchestration ever set,
// compiles to an AbstractOverride error (spec.md §4.2's "the factory is
// abstract in the base form").
type Orchestration int

const (
	Abstract Orchestration = iota
	Series
	Looping
	Parallel
)

// Snapshot is the factory's input: {taps, interceptors, args, type}, plus
// the orchestration and its bail/waterfall modifiers (spec.md's "instance
// of §4 with a particular §4.2 template").
type Snapshot struct {
	Taps          []Tap
	Interceptors  []Interceptor
	Args          []string
	Orchestration Orchestration
	Bail          bool
	Waterfall     bool
}

// Convention is the calling convention a compiled dispatcher serves.
type Convention int

const (
	ConvSync Convention = iota
	ConvAsync
	ConvPromise
)

// SyncFunc, AsyncFunc, and PromiseFunc are the three possible shapes a
// compiled dispatcher may take, one per calling convention.
type (
	SyncFunc    func(args []reflect.Value) (any, error)
	AsyncFunc   func(args []reflect.Value, done func(error, any))
	PromiseFunc func(args []reflect.Value) *eventual.Value
)

var errAbstractOverride = ex.New("Abstract: should be overridden")

// Compile synthesizes a dispatcher for snap under the requested calling
// convention. The return value is a SyncFunc, AsyncFunc, or PromiseFunc
// depending on conv; callers type-assert accordingly. This mirrors the
// dynamic nature of the source: the factory doesn't know which calling
// convention's Go function type it will produce until asked.
func Compile(snap Snapshot, conv Convention) (any, error) {
	if snap.Orchestration == Abstract {
		return nil, errAbstractOverride
	}

	needsContext := snapshotNeedsContext(snap)

	switch conv {
	case ConvSync:
		return compileSync(snap, needsContext), nil
	case ConvAsync:
		return compileAsync(snap, needsContext), nil
	case ConvPromise:
		return compilePromise(snap, needsContext), nil
	default:
		return nil, ex.Newf("dispatch: unknown calling convention %d", conv)
	}
}

func snapshotNeedsContext(snap Snapshot) bool {
	for _, t := range snap.Taps {
		if t.Context {
			return true
		}
	}
	for _, i := range snap.Interceptors {
		if i.Context {
			return true
		}
	}
	return false
}

func runOrchestration(snap Snapshot, ctx *Context, args []reflect.Value, onError func(error), onResult func(any), onDone func()) {
	switch snap.Orchestration {
	case Series:
		runSeries(snap, ctx, args, onError, onResult, onDone)
	case Looping:
		runLooping(snap, ctx, args, onError, onDone)
	case Parallel:
		runParallel(snap, ctx, args, onError, onResult, onDone)
	default:
		onError(errAbstractOverride)
	}
}
