package tapable

import (
	"context"
	"sync"

	"github.com/WB9292/tapable/internal/util"
)

var deprecationOnce sync.Once

// warnContextDeprecated emits the one-shot "Hook.context is deprecated"
// notice the first time any tap registers with Context: true,
// regardless of how many hooks or processes-worth of taps do so
// (spec.md §9: "exactly once per process").
func warnContextDeprecated() {
	deprecationOnce.Do(func() {
		util.LoggerFromContext(context.Background()).
			Warn("Hook.context is deprecated and will be removed")
	})
}
