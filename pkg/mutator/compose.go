package mutator

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"gopkg.in/tomb.v2"

	"github.com/ib-77/mutator/pkg/logging"
	"github.com/ib-77/mutator/pkg/pipe"
	"github.com/ib-77/mutator/pkg/rop"
	"github.com/ib-77/mutator/pkg/rop/core"
	"github.com/ib-77/mutator/pkg/rop/solo"
)

// composed is one flow ready to be activated.
type composed[T any] struct {
	pipeName string
	source   pipe.Source[T]
	engine   func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T]
	sub      *Subscription[T]
}

// compose builds source -> transform -> sink for one transformer of p, with a
// fresh source and sink from the pipe's factories.
//
// A sink failure is logged and the message is dropped; the flow goes on.
// A transformer failure is emitted as a *FlowError and ends the flow.
func (m *Mutator[T]) compose(p pipe.Pipe[T], e *entry[T]) composed[T] {
	source := p.Input()
	sink := p.Output()
	transform := e.fn
	name := p.Name
	fields := []zap.Field{logging.Pipe(name), logging.Subscription(e.sub.id)}
	with := func(extra ...zap.Field) []zap.Field {
		return append(slices.Clip(fields), extra...)
	}

	engine := func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		out := make(chan rop.Result[T])

		go func() {
			defer close(out)

			send := func(r rop.Result[T]) bool {
				select {
				case out <- r:
					return true
				case <-ctx.Done():
					return false
				}
			}

			m.metrics.MessageIn(name)
			solo.Tee(ctx, input, func(_ context.Context, r rop.Result[T]) {
				m.log.Debug("pre-transformation", with(logging.Message(r.Result()))...)
			})

			for tr := range solo.Guard(ctx, input.Result(), transform).Stream(ctx) {
				switch {
				case tr.IsEmpty():
					continue
				case tr.IsCancel():
					send(tr)
					return
				case tr.IsFailure():
					m.metrics.TransformFailed(name)
					send(rop.Fail[T](&FlowError{Pipe: name, SubscriptionID: e.sub.id, Stage: StageTransform, Err: tr.Err()}))
					return
				}

				m.log.Debug("post-transformation", with(logging.Message(tr.Result()))...)

				for sr := range solo.Guard(ctx, tr.Result(), sink).Stream(ctx) {
					delivered := true
					solo.DoubleTee(ctx, sr,
						func(_ context.Context, _ T) {
							delivered = send(sr)
						},
						func(ctx context.Context, err error) {
							if ctx.Err() != nil {
								return
							}
							m.metrics.SinkFailed(name)
							ferr := &FlowError{Pipe: name, SubscriptionID: e.sub.id, Stage: StageSink, Err: err}
							m.log.Error("sink failure", with(zap.Error(ferr))...)
						},
						func(_ context.Context, _ error) {},
					)
					if !delivered {
						return
					}
				}
			}
		}()

		return out
	}

	return composed[T]{
		pipeName: name,
		source:   source,
		engine:   engine,
		sub:      e.sub,
	}
}

// activate starts consuming c's source. The caller holds m.mu.
func (m *Mutator[T]) activate(parent context.Context, c composed[T]) {
	fields := []zap.Field{logging.Pipe(c.pipeName), logging.Subscription(c.sub.id)}

	t, ctx := tomb.WithContext(parent)
	input := c.source.Open(ctx)

	m.log.Info("listening on pipe", fields...)
	m.metrics.FlowStarted(c.pipeName)

	c.sub.live = t
	c.sub.state = Active

	t.Go(func() error {
		defer m.metrics.FlowStopped(c.pipeName)

		err := core.Locomotive(ctx, input, c.engine, core.FlowHandlers[T, T]{
			OnNext: func(_ context.Context, out T) {
				m.metrics.MessageOut(c.pipeName)
				m.log.Info("pipe output", append(slices.Clip(fields), logging.Message(out))...)
			},
			OnComplete: func(_ context.Context) {
				m.log.Info("pipe closed", fields...)
			},
		})
		if err != nil && !rop.IsCancellationError(err) {
			m.log.Error("flow terminated", append(slices.Clip(fields), zap.Error(err))...)
			return err
		}
		return nil
	})
}
