package dispatch

import "reflect"

// runLooping wraps a series in a do/while driven by whether any tap
// produced a defined result during the pass just completed (spec.md §4.2
// "Looping"). Every interceptor's Loop callback fires at the top of every
// iteration, before the first tap of that iteration runs.
func runLooping(snap Snapshot, ctx *Context, args []reflect.Value, onError func(error), onDone func()) {
	taps := snap.Taps
	interceptors := snap.Interceptors

	var iterate func()
	iterate = func() {
		loopAgain := false

		var step func(i int)
		step = func(i int) {
			if i >= len(taps) {
				if loopAgain {
					iterate()
				} else {
					onDone()
				}
				return
			}
			t := taps[i]
			fireTapInterceptors(interceptors, ctx, t)
			invokeTap(t, ctx, args, onError,
				func(result any) {
					loopAgain = true
					step(i + 1)
				},
				func() {
					step(i + 1)
				},
			)
		}

		fireLoopInterceptors(interceptors, ctx, args)
		step(0)
	}

	fireCallInterceptors(interceptors, ctx, args)
	iterate()
}
