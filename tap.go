package tapable

import "github.com/WB9292/tapable/internal/dispatch"

// TapType identifies a tap's calling convention. It's an alias of
// dispatch.TapType (the same pattern as Context and TapInfo): the
// dispatcher needs this type and cannot import the root package without
// creating a cycle, so it owns the definition and this package re-exports
// it.
type TapType = dispatch.TapType

const (
	// Sync taps are called directly and return nothing, a single value, an
	// error, or a (value, error) pair.
	Sync = dispatch.Sync
	// Async taps receive a trailing completion callback func(error, any).
	Async = dispatch.Async
	// Promise taps return an *eventual.Value.
	Promise = dispatch.Promise
)

// Tap is the descriptor stored in a Hook's ordered tap list. It round-trips
// through interceptor register callbacks, which may replace it wholesale,
// including any Extra fields an earlier interceptor attached.
type Tap struct {
	Name    string
	Type    TapType
	Fn      any
	Before  []string
	Stage   int
	Context bool
	Extra   map[string]any
}

// TapOptions is the registration-time options object accepted by
// Hook.Tap/TapAsync/TapPromise, or produced by wrapping a bare name string.
type TapOptions struct {
	Name string
	// Before is a string or []string naming taps this tap must precede.
	Before any
	Stage  int
	// Context opts this tap into receiving the shared per-invocation
	// *Context as its first argument. Deprecated: the first tap registered
	// with Context set logs a one-time deprecation warning per process.
	Context bool
	Extra   map[string]any
}

func normalizeBefore(v any) ([]string, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case string:
		if b == "" {
			return nil, nil
		}
		return []string{b}, nil
	case []string:
		return append([]string(nil), b...), nil
	default:
		return nil, errInvalidOptions("Before must be a string or []string, got %T", v)
	}
}

// toTap merges typ and fn into opts, producing the descriptor that will be
// run through the interceptor register fold and then inserted. Name must be
// non-empty after normalization.
func toTap(opts TapOptions, typ TapType, fn any) (Tap, error) {
	if opts.Name == "" {
		return Tap{}, errMissingName
	}
	before, err := normalizeBefore(opts.Before)
	if err != nil {
		return Tap{}, err
	}
	return Tap{
		Name:    opts.Name,
		Type:    typ,
		Fn:      fn,
		Before:  before,
		Stage:   opts.Stage,
		Context: opts.Context,
		Extra:   opts.Extra,
	}, nil
}

// optionsFromAny accepts either a bare string (treated as {Name: s}) or a
// TapOptions value, matching spec.md's "bare string or object" tap(opts, fn)
// surface.
func optionsFromAny(v any) (TapOptions, error) {
	switch o := v.(type) {
	case string:
		return TapOptions{Name: o}, nil
	case TapOptions:
		return o, nil
	default:
		return TapOptions{}, errInvalidOptions("tap options must be a string or TapOptions, got %T", v)
	}
}
