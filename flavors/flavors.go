// Package flavors provides the five standard hook shapes spec.md names as
// derivations of the core (bail-early, waterfall, loop, parallel,
// parallel-bail), plus the unnamed plain series base they're all built
// from. Each is a thin constructor over tapable.Hook that fixes its
// orchestration and modifiers; spec.md §1 is explicit that these are not
// part of the core and an implementation only SHOULD ship them.
package flavors

import "github.com/WB9292/tapable"

// BasicHook runs every tap in series, ignoring results; the outer
// completion fires once every tap has run or the first one errors.
func BasicHook(args []string, name ...string) *tapable.Hook {
	return tapable.NewOrchestrated(args, name, tapable.Series, false, false)
}

// BailHook runs taps in series, stopping at the first tap that produces a
// defined result and reporting it as the outer result.
func BailHook(args []string, name ...string) *tapable.Hook {
	return tapable.NewOrchestrated(args, name, tapable.Series, true, false)
}

// WaterfallHook runs taps in series, threading each defined result into
// the next tap's first argument, and returns the final value of that
// argument.
func WaterfallHook(args []string, name ...string) *tapable.Hook {
	return tapable.NewOrchestrated(args, name, tapable.Series, false, true)
}

// LoopHook re-runs the full series while any tap produces a defined
// result during the pass.
func LoopHook(args []string, name ...string) *tapable.Hook {
	return tapable.NewOrchestrated(args, name, tapable.Looping, false, false)
}

// ParallelHook launches every tap without waiting for its predecessors;
// the outer completion fires once all have completed or one has errored.
func ParallelHook(args []string, name ...string) *tapable.Hook {
	return tapable.NewOrchestrated(args, name, tapable.Parallel, false, false)
}

// ParallelBailHook is ParallelHook with bail: the first tap to produce a
// defined result short-circuits the rest.
func ParallelBailHook(args []string, name ...string) *tapable.Hook {
	return tapable.NewOrchestrated(args, name, tapable.Parallel, true, false)
}
