// Package pipe defines the collaborators a flow is built from: the Source that
// produces messages, the Sink that consumes them, the Transformer that sits in
// between, and the named Pipe binding a source factory to a sink factory.
package pipe

import (
	"context"

	"github.com/ib-77/mutator/pkg/rop"
)

// Source produces a lazy, possibly infinite and non-restartable sequence of
// messages. A failed result is an error, closing the channel is completion,
// and cancelling ctx stops delivery.
type Source[T any] interface {
	Open(ctx context.Context) <-chan rop.Result[T]
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context) <-chan rop.Result[T]

func (f SourceFunc[T]) Open(ctx context.Context) <-chan rop.Result[T] {
	return f(ctx)
}

// Sink consumes one transformed message and reports what happened to it.
// It is called once per message, in source order.
type Sink[T any] func(ctx context.Context, msg T) rop.Outcome[T]

// Transformer maps one message. A failed outcome or a panic ends its flow.
type Transformer[T any] func(ctx context.Context, msg T) rop.Outcome[T]

// Pipe binds a name to the factories of its input and output. Every flow
// composed on the pipe calls both factories once.
type Pipe[T any] struct {
	Name   string
	Input  func() Source[T]
	Output func() Sink[T]
}

// New builds a Pipe whose factories always hand out src and sink.
func New[T any](name string, src Source[T], sink Sink[T]) Pipe[T] {
	return Pipe[T]{
		Name:   name,
		Input:  func() Source[T] { return src },
		Output: func() Sink[T] { return sink },
	}
}
