package flavors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WB9292/tapable/eventual"
)

func TestBasicHook_RunsAllTapsIgnoresResults(t *testing.T) {
	h := BasicHook(nil)
	var ran []string
	require.NoError(t, h.Tap("a", func() any { ran = append(ran, "a"); return "ignored" }))
	require.NoError(t, h.Tap("b", func() any { ran = append(ran, "b"); return nil }))

	result, err := h.Call()
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestBailHook_StopsAtFirstResult(t *testing.T) {
	h := BailHook(nil)
	var ran []string
	require.NoError(t, h.Tap("a", func() any { ran = append(ran, "a"); return "early" }))
	require.NoError(t, h.Tap("b", func() any { ran = append(ran, "b"); return nil }))

	result, err := h.Call()
	require.NoError(t, err)
	assert.Equal(t, "early", result)
	assert.Equal(t, []string{"a"}, ran)
}

func TestWaterfallHook_ThreadsResultForward(t *testing.T) {
	h := WaterfallHook([]string{"n"})
	require.NoError(t, h.Tap("double", func(n int) any { return n * 2 }))
	require.NoError(t, h.Tap("plusOne", func(n int) any { return n + 1 }))

	result, err := h.Call(10)
	require.NoError(t, err)
	assert.Equal(t, 21, result)
}

func TestLoopHook_RestartsWhileResultsProduced(t *testing.T) {
	h := LoopHook(nil)
	calls := 0
	require.NoError(t, h.Tap("stopAfterTwo", func() any {
		calls++
		if calls < 2 {
			return "go again"
		}
		return nil
	}))

	_, err := h.Call()
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestParallelHook_AllComplete(t *testing.T) {
	h := ParallelHook(nil)
	completions := 0
	for i := 0; i < 3; i++ {
		require.NoError(t, h.TapAsync("t", func(done func(error, any)) { done(nil, nil) }))
	}

	done := make(chan struct{})
	h.CallAsync(nil, func(err error, result any) {
		completions++
		close(done)
		require.NoError(t, err)
	})
	<-done
	assert.Equal(t, 1, completions)
}

func TestParallelBailHook_FirstResultWins(t *testing.T) {
	h := ParallelBailHook(nil)
	require.NoError(t, h.TapAsync("a", func(done func(error, any)) { done(nil, "won") }))
	require.NoError(t, h.TapAsync("b", func(done func(error, any)) { done(nil, nil) }))

	var got any
	h.CallAsync(nil, func(err error, result any) {
		require.NoError(t, err)
		got = result
	})
	assert.Equal(t, "won", got)
}

func TestPromiseCallingConvention(t *testing.T) {
	h := BasicHook(nil)
	boom := errors.New("boom")
	require.NoError(t, h.TapPromise("x", func() *eventual.Value {
		return eventual.Rejected(boom)
	}))

	_, err := h.Promise().Wait()
	assert.Equal(t, boom, err)
}
