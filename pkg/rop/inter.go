package rop

import (
	"context"
	"time"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// WithEmpty extends WithCancel with the dropped-output state
type WithEmpty[T any] interface {
	WithCancel[T]
	IsEmpty() bool
}

// Settler turns a value that may still be in flight into a stream of settled
// results. Outcome is the only implementation in this module.
type Settler[T any] interface {
	Stream(ctx context.Context) <-chan Result[T]
}

var (
	_ WithEmpty[int] = Result[int]{}
	_ Settler[int]   = Outcome[int]{}
)
