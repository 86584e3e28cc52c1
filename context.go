package tapable

import "github.com/WB9292/tapable/internal/dispatch"

// Context is the fresh per-invocation record shared across all interceptors
// and context-opted taps within one call (spec.md §5). It is not safe for
// concurrent use from multiple goroutines; the hook dispatch model is
// single-threaded cooperative and a Context never outlives the invocation
// that created it. The type lives in internal/dispatch, which is where
// contexts are actually allocated and threaded through compiled
// dispatchers; this is an alias so callers never need to import that
// package directly.
type Context = dispatch.Context

// TapInfo is what an Interceptor's Tap callback observes about the tap
// about to run: enough to log or inspect, not enough to mutate (mutation
// happens only through Interceptor.Register at registration time). Like
// Context, the type lives in internal/dispatch, which is where it's
// actually constructed and passed to the callback; this is an alias so
// callers never need to import that package directly.
type TapInfo = dispatch.TapInfo
