package sinks

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/mutator/pkg/rop"
)

func settle[T any](o rop.Outcome[T]) []rop.Result[T] {
	var out []rop.Result[T]
	for r := range o.Stream(context.Background()) {
		out = append(out, r)
	}
	return out
}

func TestFunc(t *testing.T) {
	t.Parallel()

	sink := Func(func(_ context.Context, msg string) (string, error) {
		if msg == "" {
			return "", errors.New("empty message")
		}
		return msg + "-out", nil
	})

	ok := sink(context.Background(), "A")
	assert.Equal(t, rop.KindImmediate, ok.Kind())
	got := settle(ok)
	require.Len(t, got, 1)
	assert.Equal(t, "A-out", got[0].Result())

	failed := sink(context.Background(), "")
	assert.Equal(t, rop.KindFailed, failed.Kind())
	assert.EqualError(t, failed.Err(), "empty message")
}

func TestAsync(t *testing.T) {
	t.Parallel()

	sink := Async(func(_ context.Context, v int) (int, error) { return v * 10, nil })

	out := sink(context.Background(), 4)
	assert.Equal(t, rop.KindPending, out.Kind())
	got := settle(out)
	require.Len(t, got, 1)
	assert.Equal(t, 40, got[0].Result())
}

func TestToChannel(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 1)
	out := ToChannel(ch)(context.Background(), 7)
	assert.Equal(t, rop.KindImmediate, out.Kind())
	assert.Equal(t, 7, <-ch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocked := ToChannel(make(chan int))(ctx, 8)
	assert.ErrorIs(t, blocked.Err(), context.Canceled)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe broken")
}

func TestToWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := ToWriter(&buf)
	sink(context.Background(), "one")
	sink(context.Background(), "two")
	assert.Equal(t, "one\ntwo\n", buf.String())

	failed := ToWriter(failingWriter{})(context.Background(), "three")
	assert.Equal(t, rop.KindFailed, failed.Kind())
	assert.ErrorContains(t, failed.Err(), "pipe broken")
	assert.ErrorContains(t, failed.Err(), `"three"`)
}
