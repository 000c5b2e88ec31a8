// Package sinks provides ready-made pipe.Sink implementations.
package sinks

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ib-77/mutator/pkg/pipe"
	"github.com/ib-77/mutator/pkg/rop"
)

// Func wraps a synchronous output. Its result settles immediately.
func Func[T any](fn func(ctx context.Context, msg T) (T, error)) pipe.Sink[T] {
	return func(ctx context.Context, msg T) rop.Outcome[T] {
		out, err := fn(ctx, msg)
		if err != nil {
			return rop.Failed[T](err)
		}
		return rop.Immediate(out)
	}
}

// Async runs fn on its own goroutine; the flow waits for it before handing
// the next message to the sink.
func Async[T any](fn func(ctx context.Context, msg T) (T, error)) pipe.Sink[T] {
	return func(ctx context.Context, msg T) rop.Outcome[T] {
		return rop.Async(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, msg)
		})
	}
}

// ToChannel sends every message to sender and echoes it as the result.
func ToChannel[T any](sender chan<- T) pipe.Sink[T] {
	return func(ctx context.Context, msg T) rop.Outcome[T] {
		select {
		case sender <- msg:
			return rop.Immediate(msg)
		case <-ctx.Done():
			return rop.Failed[T](ctx.Err())
		}
	}
}

// ToWriter writes every message on its own line. Writes from flows sharing
// the sink are serialized.
func ToWriter(w io.Writer) pipe.Sink[string] {
	var mu sync.Mutex
	return func(_ context.Context, msg string) rop.Outcome[string] {
		mu.Lock()
		defer mu.Unlock()

		if _, err := fmt.Fprintln(w, msg); err != nil {
			return rop.Failed[string](fmt.Errorf("write %q: %w", msg, err))
		}
		return rop.Immediate(msg)
	}
}
