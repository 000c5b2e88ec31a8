package sources

import (
	"context"
	"sync"

	"github.com/ib-77/mutator/pkg/rop"
	"github.com/ib-77/mutator/pkg/rop/core"
)

type subscriber[T any] struct {
	ch   chan rop.Result[T]
	done <-chan struct{}
}

// Subject is a hot source: every Open attaches a new subscriber and each
// message pushed with Next is delivered to all subscribers attached at that
// moment. Messages pushed while nobody is attached are dropped.
type Subject[T any] struct {
	mu     sync.Mutex
	subs   map[*subscriber[T]]struct{}
	closed bool
	err    error
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{subs: make(map[*subscriber[T]]struct{})}
}

func (s *Subject[T]) Open(ctx context.Context) <-chan rop.Result[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		ch := make(chan rop.Result[T], 1)
		if s.err != nil {
			ch <- rop.Fail[T](s.err)
		}
		close(ch)
		return ch
	}

	sub := &subscriber[T]{
		ch:   make(chan rop.Result[T], core.GetBufferSize(ctx, 0)),
		done: ctx.Done(),
	}
	s.subs[sub] = struct{}{}

	if sub.done != nil {
		go func() {
			<-sub.done
			s.mu.Lock()
			delete(s.subs, sub)
			s.mu.Unlock()
		}()
	}

	return sub.ch
}

// Next delivers msg to every attached subscriber, blocking until each one has
// taken it or gone away.
func (s *Subject[T]) Next(msg T) {
	s.broadcast(rop.Success(msg))
}

// Error fails every attached subscriber with err and closes the subject.
func (s *Subject[T]) Error(err error) {
	s.broadcast(rop.Fail[T](err))
	s.close(err)
}

// Complete closes the subject; attached subscribers see their channel close.
func (s *Subject[T]) Complete() {
	s.close(nil)
}

// Subscribers reports how many subscribers are attached.
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Subject[T]) broadcast(r rop.Result[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	for sub := range s.subs {
		select {
		case <-sub.done:
			continue
		default:
		}

		select {
		case sub.ch <- r:
		case <-sub.done:
		}
	}
}

func (s *Subject[T]) close(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.err = err

	for sub := range s.subs {
		close(sub.ch)
	}
	clear(s.subs)
}
