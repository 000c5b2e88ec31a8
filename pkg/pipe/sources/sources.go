// Package sources provides ready-made pipe.Source implementations: a hot
// Subject, channel, slice and line-reader sources, and a websocket listener.
package sources

import (
	"bufio"
	"context"
	"io"

	"github.com/ib-77/mutator/pkg/pipe"
	"github.com/ib-77/mutator/pkg/rop"
	"github.com/ib-77/mutator/pkg/rop/core"
)

// FromChannel reads messages from rec until it closes. Several flows opened on
// the same source compete for the messages.
func FromChannel[T any](rec <-chan T) pipe.Source[T] {
	return pipe.SourceFunc[T](func(ctx context.Context) <-chan rop.Result[T] {
		out := make(chan rop.Result[T], core.GetBufferSize(ctx, 0))

		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-rec:
					if !ok {
						return
					}
					select {
					case out <- rop.Success(v):
					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return out
	})
}

// FromSlice replays values on every Open, then completes.
func FromSlice[T any](values ...T) pipe.Source[T] {
	return pipe.SourceFunc[T](func(ctx context.Context) <-chan rop.Result[T] {
		return core.ToChanManyResults(ctx, values)
	})
}

// FromReader emits r line by line. A read error fails the source.
func FromReader(r io.Reader) pipe.Source[string] {
	return pipe.SourceFunc[string](func(ctx context.Context) <-chan rop.Result[string] {
		out := make(chan rop.Result[string], core.GetBufferSize(ctx, 0))

		go func() {
			defer close(out)

			scanner := bufio.NewScanner(r)
			for scanner.Scan() {
				select {
				case out <- rop.Success(scanner.Text()):
				case <-ctx.Done():
					return
				}
			}

			if err := scanner.Err(); err != nil {
				select {
				case out <- rop.Fail[string](err):
				case <-ctx.Done():
				}
			}
		}()

		return out
	})
}
