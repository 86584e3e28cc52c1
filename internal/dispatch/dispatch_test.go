package dispatch

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileSyncT(t *testing.T, snap Snapshot) SyncFunc {
	t.Helper()
	d, err := Compile(snap, ConvSync)
	require.NoError(t, err)
	return d.(SyncFunc)
}

func compileAsyncT(t *testing.T, snap Snapshot) AsyncFunc {
	t.Helper()
	d, err := Compile(snap, ConvAsync)
	require.NoError(t, err)
	return d.(AsyncFunc)
}

func compilePromiseT(t *testing.T, snap Snapshot) PromiseFunc {
	t.Helper()
	d, err := Compile(snap, ConvPromise)
	require.NoError(t, err)
	return d.(PromiseFunc)
}

func TestCompile_AbstractOrchestration(t *testing.T) {
	_, err := Compile(Snapshot{}, ConvSync)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Abstract")
}

// Scenario 3: promise sync-leak.
func TestPromiseSyncLeak(t *testing.T) {
	taps := []Tap{
		{Name: "boom", Type: Sync, Fn: func() any { panic("boom") }},
	}
	fn := compilePromiseT(t, Snapshot{Taps: taps, Orchestration: Series})

	v := fn(nil) // must never panic synchronously
	_, err := v.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

// Scenario 4: parallel error isolation.
func TestParallelErrorIsolation(t *testing.T) {
	var doneCount, errCount int
	var lastErr error

	mk := func(behavior func(done func(error, any))) Tap {
		return Tap{Type: Async, Fn: func(done func(error, any)) { behavior(done) }}
	}

	taps := []Tap{
		mk(func(done func(error, any)) { done(nil, "ok0") }),
		mk(func(done func(error, any)) { done(assertErr, nil) }),
		mk(func(done func(error, any)) { done(nil, "ok2") }),
	}

	fn := compileAsyncT(t, Snapshot{Taps: taps, Orchestration: Parallel})
	fn(nil, func(err error, result any) {
		if err != nil {
			errCount++
			lastErr = err
		} else {
			doneCount++
		}
	})

	assert.Equal(t, 1, errCount)
	assert.Equal(t, 0, doneCount)
	assert.Equal(t, assertErr, lastErr)
}

var assertErr = errBoom{}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// Scenario 5: looping restart on defined result.
func TestLoopingRestart(t *testing.T) {
	var passes []string
	secondTapCalls := 0

	taps := []Tap{
		{Name: "a", Type: Sync, Fn: func() any {
			passes = append(passes, "a")
			return nil
		}},
		{Name: "b", Type: Sync, Fn: func() any {
			passes = append(passes, "b")
			secondTapCalls++
			if secondTapCalls == 1 {
				return 42
			}
			return nil
		}},
	}

	fn := compileSyncT(t, Snapshot{Taps: taps, Orchestration: Looping})
	_, err := fn(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "a", "b"}, passes)
	assert.Equal(t, 2, secondTapCalls)
}

// Scenario 6: interceptor tap order.
func TestInterceptorTapOrder(t *testing.T) {
	var order []string

	mkInterceptor := func(name string) Interceptor {
		return Interceptor{
			Call: func() { order = append(order, name+".call") },
			Tap: func(info TapInfo) {
				order = append(order, name+".tap("+info.Name+")")
			},
		}
	}

	taps := []Tap{
		{Name: "T1", Type: Sync, Fn: func() any {
			order = append(order, "T1")
			return nil
		}},
		{Name: "T2", Type: Sync, Fn: func() any {
			order = append(order, "T2")
			return nil
		}},
	}

	fn := compileSyncT(t, Snapshot{
		Taps:          taps,
		Interceptors:  []Interceptor{mkInterceptor("I1"), mkInterceptor("I2")},
		Orchestration: Series,
	})
	_, err := fn(nil)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"I1.call", "I2.call",
		"I1.tap(T1)", "I2.tap(T1)", "T1",
		"I1.tap(T2)", "I2.tap(T2)", "T2",
	}, ","), strings.Join(order, ","))
}

func TestSeriesBail(t *testing.T) {
	var ran []string
	taps := []Tap{
		{Name: "a", Type: Sync, Fn: func() any { ran = append(ran, "a"); return "stop-here" }},
		{Name: "b", Type: Sync, Fn: func() any { ran = append(ran, "b"); return nil }},
	}
	fn := compileSyncT(t, Snapshot{Taps: taps, Orchestration: Series, Bail: true})
	result, err := fn(nil)
	require.NoError(t, err)
	assert.Equal(t, "stop-here", result)
	assert.Equal(t, []string{"a"}, ran)
}

func TestSeriesWaterfall(t *testing.T) {
	taps := []Tap{
		{Name: "double", Type: Sync, Fn: func(x int) any { return x * 2 }},
		{Name: "increment", Type: Sync, Fn: func(x int) any { return x + 1 }},
	}
	fn := compileSyncT(t, Snapshot{Taps: taps, Orchestration: Series, Waterfall: true})
	result, err := fn([]reflect.Value{reflect.ValueOf(5)})
	require.NoError(t, err)
	assert.Equal(t, 11, result)
}
