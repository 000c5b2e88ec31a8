package mutator

import (
	"context"
	"slices"

	"github.com/ib-77/mutator/pkg/pipe"
	"github.com/ib-77/mutator/pkg/rop"
)

type entry[T any] struct {
	fn  pipe.Transformer[T]
	sub *Subscription[T]
}

// transformers is the per-pipe ordered registry. It is not safe for concurrent
// use; Mutator guards it with its mutex.
type transformers[T any] struct {
	byPipe map[string][]*entry[T]
	order  []string
}

func newTransformers[T any]() *transformers[T] {
	return &transformers[T]{byPipe: make(map[string][]*entry[T])}
}

// add appends e to the pipe's list and returns its index.
func (r *transformers[T]) add(pipeName string, e *entry[T]) int {
	list, ok := r.byPipe[pipeName]
	if !ok {
		r.order = append(r.order, pipeName)
	}
	r.byPipe[pipeName] = append(list, e)
	return len(list)
}

// remove deletes the entry at index. Later entries shift down and their
// subscriptions follow, so every subscription keeps pointing at its own slot.
func (r *transformers[T]) remove(pipeName string, index int) bool {
	list := r.byPipe[pipeName]
	if index < 0 || index >= len(list) {
		return false
	}

	removed := list[index]
	list = slices.Delete(list, index, index+1)
	for i := index; i < len(list); i++ {
		list[i].sub.index = i
	}
	removed.sub.index = -1
	r.byPipe[pipeName] = list
	return true
}

func (r *transformers[T]) count() int {
	n := 0
	for _, list := range r.byPipe {
		n += len(list)
	}
	return n
}

// pending returns, per pipe in registration order, the entries not activated
// yet. Pipes without such entries are omitted.
func (r *transformers[T]) pending() ([]string, map[string][]*entry[T]) {
	names := make([]string, 0, len(r.order))
	byPipe := make(map[string][]*entry[T])

	for _, name := range r.order {
		for _, e := range r.byPipe[name] {
			if e.sub.state == Registered {
				byPipe[name] = append(byPipe[name], e)
			}
		}
		if len(byPipe[name]) > 0 {
			names = append(names, name)
		}
	}
	return names, byPipe
}

func (r *transformers[T]) subscriptions(pipeName string) []*Subscription[T] {
	list := r.byPipe[pipeName]
	subs := make([]*Subscription[T], len(list))
	for i, e := range list {
		subs[i] = e.sub
	}
	return subs
}

// Map lifts a transformation that cannot fail.
func Map[T any](fn func(ctx context.Context, msg T) T) pipe.Transformer[T] {
	return func(ctx context.Context, msg T) rop.Outcome[T] {
		return rop.Immediate(fn(ctx, msg))
	}
}

// Try lifts a transformation that may fail; an error ends the flow.
func Try[T any](fn func(ctx context.Context, msg T) (T, error)) pipe.Transformer[T] {
	return func(ctx context.Context, msg T) rop.Outcome[T] {
		out, err := fn(ctx, msg)
		if err != nil {
			return rop.Failed[T](err)
		}
		return rop.Immediate(out)
	}
}

// PassThrough forwards every message unchanged.
func PassThrough[T any]() pipe.Transformer[T] {
	return func(_ context.Context, msg T) rop.Outcome[T] {
		return rop.Immediate(msg)
	}
}
