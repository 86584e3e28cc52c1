package dispatch

import "reflect"

// runSeries runs taps in order, each receiving the previous one's
// onDone/onResult as its continuation (spec.md §4.2 "Series"). Bail stops
// and reports the first defined result through the outer onResult instead
// of continuing; Waterfall threads a defined result into the first
// argument position for the next tap, and reports the final first argument
// through the outer onResult once every tap has run. Neither modifier changes error
// propagation: any tap's error stops the series immediately.
func runSeries(snap Snapshot, ctx *Context, args []reflect.Value, onError func(error), onResult func(any), onDone func()) {
	taps := snap.Taps
	interceptors := snap.Interceptors

	var step func(i int, cur []reflect.Value)
	step = func(i int, cur []reflect.Value) {
		if i >= len(taps) {
			if snap.Waterfall && len(cur) > 0 && cur[0].IsValid() {
				onResult(cur[0].Interface())
				return
			}
			onDone()
			return
		}
		t := taps[i]
		fireTapInterceptors(interceptors, ctx, t)
		invokeTap(t, ctx, cur, onError,
			func(result any) {
				if snap.Bail {
					onResult(result)
					return
				}
				next := cur
				if snap.Waterfall && len(cur) > 0 {
					next = append([]reflect.Value(nil), cur...)
					next[0] = reflect.ValueOf(result)
				}
				step(i+1, next)
			},
			func() {
				step(i+1, cur)
			},
		)
	}

	fireCallInterceptors(interceptors, ctx, args)
	step(0, args)
}
