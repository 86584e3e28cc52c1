package tapable

import "github.com/WB9292/tapable/internal/dispatch"

// Orchestration selects the composition pattern a concrete hook flavor
// runs its taps under.
type Orchestration = dispatch.Orchestration

const (
	Series   = dispatch.Series
	Looping  = dispatch.Looping
	Parallel = dispatch.Parallel
)

// NewOrchestrated builds a Hook with its orchestration fixed, for use by
// package flavors' constructors. Most callers should use flavors's named
// constructors (flavors.BailHook, flavors.WaterfallHook, ...) instead of
// calling this directly — an orchestration-less Hook (built with plain
// New) is deliberately "abstract" and fails at invocation time, per
// spec.md §4.2.
func NewOrchestrated(args []string, name []string, o Orchestration, bail, waterfall bool) *Hook {
	h := New(args, name...)
	h.setOrchestration(o, bail, waterfall)
	return h
}
