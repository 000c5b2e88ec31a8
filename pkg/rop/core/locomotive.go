package core

import (
	"context"

	"github.com/ib-77/mutator/pkg/rop"
)

// FlowHandlers observe a flow driven by Locomotive. Every handler is optional.
type FlowHandlers[In, Out any] struct {
	OnNext              func(ctx context.Context, out Out)
	OnComplete          func(ctx context.Context)
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In])
}

// Locomotive pulls results from inputCh one at a time and runs each through
// engine, draining every result the engine produces for a message before the
// next message is received, so output order follows input order.
//
// It returns nil when the input closes or ctx is cancelled, and the first
// failure reported by the input or by the engine otherwise. Empty results are
// skipped.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out],
	handlers FlowHandlers[In, Out]) error {

	for {
		select {
		case <-ctx.Done():
			return nil
		case in, ok := <-inputCh:
			if !ok {
				if handlers.OnComplete != nil {
					handlers.OnComplete(ctx)
				}
				return nil
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				return nil
			}

			switch {
			case in.IsCancel():
				return nil
			case in.IsFailure():
				return in.Err()
			case in.IsEmpty():
				continue
			}

			for pr := range engine(ctx, in) {
				if ctx.Err() != nil {
					return nil
				}

				switch {
				case pr.IsSuccess():
					if handlers.OnNext != nil {
						handlers.OnNext(ctx, pr.Result())
					}
				case pr.IsCancel():
					return nil
				case pr.IsFailure():
					return pr.Err()
				}
			}
		}
	}
}
