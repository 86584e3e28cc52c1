package tapable

import "github.com/WB9292/tapable/internal/ex"

// errMissingName and errInvalidOptions are the registration-time usage
// errors from spec.md §6. AbstractOverride and NonPromiseReturn are raised
// inside internal/dispatch, which is where those conditions are actually
// detected (an unset orchestration, or a promise tap's return value).
var errMissingName = ex.New("Missing name for tap")

func errInvalidOptions(format string, args ...any) error {
	return ex.Newf("Invalid tap options: "+format, args...)
}
