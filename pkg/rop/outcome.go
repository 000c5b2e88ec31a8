package rop

import (
	"context"
	"errors"
)

// ErrNoValue is reported when a pending outcome has nothing to wait on.
var ErrNoValue = errors.New("pending outcome without a value channel")

// Kind tags the variant held by an Outcome.
type Kind int

const (
	KindImmediate Kind = iota
	KindPending
	KindStream
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindImmediate:
		return "immediate"
	case KindPending:
		return "pending"
	case KindStream:
		return "stream"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is what a transformer or a sink hands back for one message:
// a value available now, a single value that will settle later, a stream of
// values, or a failure.
type Outcome[T any] struct {
	kind  Kind
	value T
	err   error
	ch    <-chan Result[T]
}

func Immediate[T any](v T) Outcome[T] {
	return Outcome[T]{kind: KindImmediate, value: v}
}

// Pending wraps a channel that settles exactly once. Only the first result is
// taken; a channel closed without a result settles to nothing.
func Pending[T any](ch <-chan Result[T]) Outcome[T] {
	return Outcome[T]{kind: KindPending, ch: ch}
}

// StreamOf wraps a channel whose every result is forwarded until it closes.
func StreamOf[T any](ch <-chan Result[T]) Outcome[T] {
	return Outcome[T]{kind: KindStream, ch: ch}
}

func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{kind: KindFailed, err: err}
}

// Async runs fn on its own goroutine and returns its pending outcome.
func Async[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Outcome[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		if err != nil {
			ch <- Fail[T](err)
			return
		}
		ch <- Success(v)
	}()
	return Pending[T](ch)
}

func (o Outcome[T]) Kind() Kind {
	return o.kind
}

func (o Outcome[T]) Err() error {
	return o.err
}

// Stream normalizes every variant to the same asynchronous shape. The returned
// channel is closed once the outcome is settled or ctx is done.
func (o Outcome[T]) Stream(ctx context.Context) <-chan Result[T] {
	switch o.kind {
	case KindImmediate:
		return settled(Success(o.value))
	case KindFailed:
		return settled(Fail[T](o.err))
	case KindPending:
		if o.ch == nil {
			return settled(Fail[T](ErrNoValue))
		}
		return forward(ctx, o.ch, 1)
	case KindStream:
		if o.ch == nil {
			return settled(Fail[T](ErrNoValue))
		}
		return forward(ctx, o.ch, -1)
	default:
		return settled(Fail[T](errors.New("unknown outcome kind: " + o.kind.String())))
	}
}

func settled[T any](r Result[T]) <-chan Result[T] {
	out := make(chan Result[T], 1)
	out <- r
	close(out)
	return out
}

// forward copies at most limit results (all of them when limit < 0).
func forward[T any](ctx context.Context, in <-chan Result[T], limit int) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)

		for n := 0; limit < 0 || n < limit; n++ {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
