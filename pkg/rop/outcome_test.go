package rop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](ch <-chan Result[T]) []Result[T] {
	var out []Result[T]
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func TestOutcome_Immediate(t *testing.T) {
	t.Parallel()

	o := Immediate("ready")
	assert.Equal(t, KindImmediate, o.Kind())

	got := drain(o.Stream(context.Background()))
	require.Len(t, got, 1)
	assert.True(t, got[0].IsSuccess())
	assert.Equal(t, "ready", got[0].Result())
}

func TestOutcome_Failed(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	o := Failed[int](boom)
	assert.Equal(t, KindFailed, o.Kind())
	assert.Equal(t, boom, o.Err())

	got := drain(o.Stream(context.Background()))
	require.Len(t, got, 1)
	assert.True(t, got[0].IsFailure())
	assert.ErrorIs(t, got[0].Err(), boom)
}

func TestOutcome_PendingTakesFirstResultOnly(t *testing.T) {
	t.Parallel()

	ch := make(chan Result[int], 2)
	ch <- Success(1)
	ch <- Success(2)
	close(ch)

	got := drain(Pending[int](ch).Stream(context.Background()))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Result())
}

func TestOutcome_PendingClosedWithoutValue(t *testing.T) {
	t.Parallel()

	ch := make(chan Result[int])
	close(ch)

	assert.Empty(t, drain(Pending[int](ch).Stream(context.Background())))
}

func TestOutcome_NilChannel(t *testing.T) {
	t.Parallel()

	for _, o := range []Outcome[int]{Pending[int](nil), StreamOf[int](nil)} {
		got := drain(o.Stream(context.Background()))
		require.Len(t, got, 1)
		assert.ErrorIs(t, got[0].Err(), ErrNoValue)
	}
}

func TestOutcome_StreamForwardsAll(t *testing.T) {
	t.Parallel()

	ch := make(chan Result[string], 3)
	ch <- Success("a")
	ch <- Empty[string]()
	ch <- Success("b")
	close(ch)

	got := drain(StreamOf[string](ch).Stream(context.Background()))
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Result())
	assert.True(t, got[1].IsEmpty())
	assert.Equal(t, "b", got[2].Result())
}

func TestOutcome_StreamStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	never := make(chan Result[int])
	out := StreamOf[int](never).Stream(ctx)

	cancel()
	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream not closed after cancel")
	}
}

func TestAsync(t *testing.T) {
	t.Parallel()

	ok := Async(context.Background(), func(context.Context) (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 42, nil
	})
	assert.Equal(t, KindPending, ok.Kind())

	got := drain(ok.Stream(context.Background()))
	require.Len(t, got, 1)
	assert.Equal(t, 42, got[0].Result())

	bad := errors.New("unreachable")
	failed := drain(Async(context.Background(), func(context.Context) (int, error) {
		return 0, bad
	}).Stream(context.Background()))
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[0].Err(), bad)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "immediate", KindImmediate.String())
	assert.Equal(t, "pending", KindPending.String())
	assert.Equal(t, "stream", KindStream.String())
	assert.Equal(t, "failed", KindFailed.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
