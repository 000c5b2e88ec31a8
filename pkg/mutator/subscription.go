package mutator

import (
	"gopkg.in/tomb.v2"
)

// State is the lifecycle position of a Subscription.
type State int

const (
	Registered State = iota
	Active
	Disposed
)

func (s State) String() string {
	switch s {
	case Registered:
		return "registered"
	case Active:
		return "active"
	case Disposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Subscription is the handle on one (pipe, transformer) registration. The
// Mutator owns it; holders can inspect and cancel it.
type Subscription[T any] struct {
	id       string
	pipeName string
	owner    *Mutator[T]

	// guarded by owner.mu
	index int
	state State
	live  *tomb.Tomb
}

func (s *Subscription[T]) ID() string {
	return s.id
}

func (s *Subscription[T]) PipeName() string {
	return s.pipeName
}

func (s *Subscription[T]) State() State {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return s.state
}

// Index is the subscription's slot in its pipe's transformer list, or -1
// once the transformer has been removed.
func (s *Subscription[T]) Index() int {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return s.index
}

// Done is closed once the flow has stopped, on its own or by Unsubscribe.
// It is nil until the subscription has been activated.
func (s *Subscription[T]) Done() <-chan struct{} {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	if s.live == nil {
		return nil
	}
	return s.live.Dead()
}

// Err reports why the flow stopped: nil while it runs, after natural
// completion or after Unsubscribe, and the terminating failure otherwise.
func (s *Subscription[T]) Err() error {
	s.owner.mu.Lock()
	live := s.live
	s.owner.mu.Unlock()

	if live == nil || live.Alive() {
		return nil
	}
	select {
	case <-live.Dead():
		return live.Err()
	default:
		return nil
	}
}

// Unsubscribe removes the transformer from its pipe and stops its flow. It
// is safe before activation and safe to call more than once.
func (s *Subscription[T]) Unsubscribe() {
	s.owner.unsubscribe(s)
}
