package pipe

import "slices"

// Registry is the fixed list of pipes an orchestrator was built with.
type Registry[T any] struct {
	pipes []Pipe[T]
}

func NewRegistry[T any](pipes ...Pipe[T]) Registry[T] {
	return Registry[T]{pipes: slices.Clone(pipes)}
}

// Find returns the first pipe registered under name.
func (r Registry[T]) Find(name string) (Pipe[T], bool) {
	for _, p := range r.pipes {
		if p.Name == name {
			return p, true
		}
	}
	return Pipe[T]{}, false
}

func (r Registry[T]) Names() []string {
	names := make([]string, 0, len(r.pipes))
	for _, p := range r.pipes {
		names = append(names, p.Name)
	}
	return names
}

func (r Registry[T]) Len() int {
	return len(r.pipes)
}
