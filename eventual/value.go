// Package eventual provides a minimal stand-in for "a value that will
// eventually resolve or reject", used as this module's promise calling
// convention (spec.md §4.2, §6). A Value settles at most once, driven only
// by whatever already-running code calls its resolver's resolve/reject —
// the package itself never spawns a goroutine, keeping the single-threaded
// cooperative model spec.md §5 requires.
package eventual

import "sync"

type state int

const (
	pending state = iota
	fulfilled
	rejected
)

// Value is a single-assignment container for a result or an error.
type Value struct {
	mu       sync.Mutex
	st       state
	result   any
	err      error
	settled  chan struct{}
	settleCB []func()
}

// NewValue constructs a Value and immediately invokes resolver with the
// resolve/reject functions that settle it. Either may be called at most
// once; later calls are ignored, matching ordinary promise semantics.
func NewValue(resolver func(resolve func(any), reject func(error))) *Value {
	v := &Value{settled: make(chan struct{})}
	resolver(v.resolve, v.reject)
	return v
}

// Resolved returns an already-fulfilled Value.
func Resolved(result any) *Value {
	v := &Value{settled: make(chan struct{})}
	v.resolve(result)
	return v
}

// Rejected returns an already-rejected Value.
func Rejected(err error) *Value {
	v := &Value{settled: make(chan struct{})}
	v.reject(err)
	return v
}

func (v *Value) resolve(result any) {
	v.mu.Lock()
	if v.st != pending {
		v.mu.Unlock()
		return
	}
	v.st = fulfilled
	v.result = result
	callbacks := v.settleCB
	v.settleCB = nil
	close(v.settled)
	v.mu.Unlock()
	for _, cb := range callbacks {
		cb()
	}
}

func (v *Value) reject(err error) {
	v.mu.Lock()
	if v.st != pending {
		v.mu.Unlock()
		return
	}
	v.st = rejected
	v.err = err
	callbacks := v.settleCB
	v.settleCB = nil
	close(v.settled)
	v.mu.Unlock()
	for _, cb := range callbacks {
		cb()
	}
}

// onSettle runs fn once this Value settles, immediately if it already has.
func (v *Value) onSettle(fn func()) {
	v.mu.Lock()
	if v.st != pending {
		v.mu.Unlock()
		fn()
		return
	}
	v.settleCB = append(v.settleCB, fn)
	v.mu.Unlock()
}

// Then attaches fulfillment/rejection handlers and returns a new Value
// settled by whichever handler runs. A nil handler passes the outcome
// through unchanged (the standard promise "identity" shortcut).
func (v *Value) Then(onFulfilled func(any) (any, error), onRejected func(error) (any, error)) *Value {
	next := &Value{settled: make(chan struct{})}
	v.onSettle(func() {
		v.mu.Lock()
		st, result, err := v.st, v.result, v.err
		v.mu.Unlock()

		switch st {
		case fulfilled:
			if onFulfilled == nil {
				next.resolve(result)
				return
			}
			r, e := onFulfilled(result)
			if e != nil {
				next.reject(e)
				return
			}
			next.resolve(r)
		case rejected:
			if onRejected == nil {
				next.reject(err)
				return
			}
			r, e := onRejected(err)
			if e != nil {
				next.reject(e)
				return
			}
			next.resolve(r)
		}
	})
	return next
}

// Wait blocks until the Value settles and returns its outcome.
func (v *Value) Wait() (any, error) {
	<-v.settled
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result, v.err
}
