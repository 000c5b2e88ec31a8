package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/mutator/pkg/rop"
)

// PanicError carries the value a stage panicked with.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Guard calls stage with input. A panic inside stage is reported as a failed
// outcome holding a *PanicError.
func Guard[In, Out any](ctx context.Context, input In,
	stage func(ctx context.Context, in In) rop.Outcome[Out]) (out rop.Outcome[Out]) {

	defer func() {
		if r := recover(); r != nil {
			out = rop.Failed[Out](&PanicError{Value: r})
		}
	}()

	return stage(ctx, input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		onSuccess(ctx, input.Result())
	case input.IsCancel():
		onCancel(ctx, input.Err())
	case input.IsFailure():
		onError(ctx, input.Err())
	}

	return input
}
