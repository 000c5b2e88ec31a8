package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/mutator/pkg/rop"
)

func double(_ context.Context, in rop.Result[int]) <-chan rop.Result[int] {
	out := make(chan rop.Result[int], 1)
	out <- rop.Success(in.Result() * 2)
	close(out)
	return out
}

func TestLocomotive_OrderAndCompletion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var got []int
	completed := false

	err := Locomotive(ctx, ToChanManyResults(ctx, []int{1, 2, 3, 4}), double, FlowHandlers[int, int]{
		OnNext:     func(_ context.Context, out int) { got = append(got, out) },
		OnComplete: func(context.Context) { completed = true },
	})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8}, got)
	assert.True(t, completed)
}

func TestLocomotive_EngineFailureStops(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")
	var got []int

	engine := func(ctx context.Context, in rop.Result[int]) <-chan rop.Result[int] {
		if in.Result() == 2 {
			out := make(chan rop.Result[int], 1)
			out <- rop.Fail[int](boom)
			close(out)
			return out
		}
		return double(ctx, in)
	}

	err := Locomotive(ctx, ToChanManyResults(ctx, []int{1, 2, 3}), engine, FlowHandlers[int, int]{
		OnNext: func(_ context.Context, out int) { got = append(got, out) },
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{2}, got)
}

func TestLocomotive_InputFailureAndEmpty(t *testing.T) {
	t.Parallel()

	boom := errors.New("source down")
	in := make(chan rop.Result[int], 3)
	in <- rop.Empty[int]()
	in <- rop.Success(1)
	in <- rop.Fail[int](boom)
	close(in)

	var got []int
	err := Locomotive(context.Background(), in, double, FlowHandlers[int, int]{
		OnNext:     func(_ context.Context, out int) { got = append(got, out) },
		OnComplete: func(context.Context) { t.Error("completion after a failure") },
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{2}, got)
}

func TestLocomotive_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan rop.Result[int])
	done := make(chan error, 1)

	go func() {
		done <- Locomotive(ctx, in, double, FlowHandlers[int, int]{})
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("locomotive did not stop")
	}
}

func TestGetBufferSize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 3, GetBufferSize(ctx, 3))
	assert.Equal(t, 16, GetBufferSize(WithBufferOptions(ctx, 16), 3))
	assert.Equal(t, 3, GetBufferSize(WithBufferOptions(ctx, -1), 3))
}

func TestFromChanMany(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	assert.Equal(t, []int{1, 2, 3}, FromChanMany(context.Background(), ch))
}
