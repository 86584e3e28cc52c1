package dispatch

import "reflect"

// runParallel launches all taps without waiting for each other (spec.md
// §4.2 "Parallel"). A shared counter, initialized to len(taps), is
// decremented by each tap's completion; it reaches zero exactly once, at
// which point the outer onDone fires. An error zeros the counter and
// reports through onError immediately, suppressing any later completions
// (the "counter > 0" guard). Bail additionally short-circuits on the first
// defined result, reporting it through onResult instead of onDone. A
// single tap degrades to series, since there is nothing to parallelize.
func runParallel(snap Snapshot, ctx *Context, args []reflect.Value, onError func(error), onResult func(any), onDone func()) {
	taps := snap.Taps
	interceptors := snap.Interceptors

	if len(taps) <= 1 {
		runSeries(Snapshot{Taps: taps, Interceptors: interceptors, Bail: snap.Bail}, ctx, args, onError, onResult, onDone)
		return
	}

	fireCallInterceptors(interceptors, ctx, args)

	counter := len(taps)
	finished := false

	complete := func() {
		if !finished {
			finished = true
			onDone()
		}
	}

	for _, t := range taps {
		t := t
		fireTapInterceptors(interceptors, ctx, t)
		invokeTap(t, ctx, args,
			func(err error) {
				if counter > 0 {
					counter = 0
					onError(err)
				}
			},
			func(result any) {
				if counter <= 0 {
					return
				}
				if snap.Bail {
					counter = 0
					onResult(result)
					return
				}
				counter--
				if counter == 0 {
					complete()
				}
			},
			func() {
				if counter <= 0 {
					return
				}
				counter--
				if counter == 0 {
					complete()
				}
			},
		)
	}
}
