package mutator

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ib-77/mutator/pkg/config"
	"github.com/ib-77/mutator/pkg/logging"
	"github.com/ib-77/mutator/pkg/metrics"
	"github.com/ib-77/mutator/pkg/pipe"
)

// Mutator binds a fixed set of pipes to transformers registered at runtime
// and runs one flow per (pipe, transformer) pair.
type Mutator[T any] struct {
	pipes   pipe.Registry[T]
	config  config.Config
	log     logging.Logger
	metrics *metrics.Flows

	mu           sync.Mutex
	transformers *transformers[T]
}

// New resolves cfg over the defaults and builds a Mutator for pipes.
func New[T any](pipes []pipe.Pipe[T], cfg config.Config, opts ...Option) (*Mutator[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	resolved := config.Resolve(cfg)

	var log logging.Logger
	if o.logger != nil {
		log = logging.WithLevel(o.logger, resolved.LogLevel)
	} else {
		zl, err := logging.New(resolved.Logging())
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
		log = zl
	}

	m := o.metrics
	if m == nil && o.registry != nil {
		m = metrics.New(o.registry, resolved.Metrics.Namespace)
	}

	return &Mutator[T]{
		pipes:        pipe.NewRegistry(pipes...),
		config:       resolved,
		log:          log,
		metrics:      m,
		transformers: newTransformers[T](),
	}, nil
}

// Config returns the configuration resolved at construction.
func (m *Mutator[T]) Config() config.Config {
	return m.config
}

// Transform registers transformer on pipeName and returns its subscription.
// The pipe name is not checked until Start; running flows are not affected.
func (m *Mutator[T]) Transform(pipeName string, transformer pipe.Transformer[T]) *Subscription[T] {
	sub := &Subscription[T]{
		id:       uuid.NewString(),
		pipeName: pipeName,
		owner:    m,
		state:    Registered,
	}

	m.mu.Lock()
	sub.index = m.transformers.add(pipeName, &entry[T]{fn: transformer, sub: sub})
	m.mu.Unlock()

	m.metrics.Subscribed()
	return sub
}

// RemoveTransformer deletes the transformer at index from pipeName's list,
// shifting later ones down. It reports false, changing nothing, when there is
// no such entry. A running flow is not stopped.
func (m *Mutator[T]) RemoveTransformer(pipeName string, index int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transformers.remove(pipeName, index)
}

// Subscriptions lists the subscriptions registered on pipeName, in
// transformer order.
func (m *Mutator[T]) Subscriptions(pipeName string) []*Subscription[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transformers.subscriptions(pipeName)
}

// Start composes and activates a flow for every registered transformer that
// is not running yet. Flows live until their source completes, their
// transformer fails, they are unsubscribed, or ctx is cancelled.
//
// A transformer registered on a pipe that does not exist aborts Start with a
// *ConfigurationError before any flow is activated.
func (m *Mutator[T]) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.transformers.count() == 0 {
		m.log.Info("there are no transformers set, nothing to start")
		return nil
	}

	names, pending := m.transformers.pending()

	found := make(map[string]pipe.Pipe[T], len(names))
	for _, name := range names {
		p, ok := m.pipes.Find(name)
		var cerr *ConfigurationError
		switch {
		case !ok:
			cerr = &ConfigurationError{Pipe: name, Reason: "no such pipe is registered"}
		case p.Input == nil || p.Output == nil:
			cerr = &ConfigurationError{Pipe: name, Reason: "the pipe lacks an input or output factory"}
		}
		if cerr != nil {
			m.log.Error("cannot start", logging.Pipe(name), logging.Err(cerr))
			return cerr
		}
		found[name] = p
	}

	for _, name := range names {
		for _, e := range pending[name] {
			m.activate(ctx, m.compose(found[name], e))
		}
	}
	return nil
}

// Close unsubscribes every registered subscription.
func (m *Mutator[T]) Close() {
	m.mu.Lock()
	var subs []*Subscription[T]
	for _, name := range m.transformers.order {
		subs = append(subs, m.transformers.subscriptions(name)...)
	}
	m.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
}

func (m *Mutator[T]) unsubscribe(s *Subscription[T]) {
	m.mu.Lock()
	if s.state == Disposed {
		m.mu.Unlock()
		return
	}
	if s.index >= 0 {
		m.transformers.remove(s.pipeName, s.index)
	}
	live := s.live
	s.state = Disposed
	m.mu.Unlock()

	if live != nil {
		live.Kill(nil)
	}
	m.log.Info("pipe closed (unsubscribed)", logging.Pipe(s.pipeName), logging.Subscription(s.id))
}
