// Package mutator is the pipeline orchestrator. It binds named pipes (an input
// source and an output sink) to transformers attached at runtime, runs every
// (pipe, transformer) pair as an independent flow, and hands out a
// Subscription per transformer that can stop exactly that flow.
//
// Typical usage:
//
//	subject := sources.NewSubject[string]()
//	m, err := mutator.New([]pipe.Pipe[string]{
//		pipe.New[string]("events", subject, sinks.ToWriter(os.Stdout)),
//	}, config.Config{LogLevel: logging.LevelDebug})
//	if err != nil {
//		return err
//	}
//
//	sub := m.Transform("events", mutator.Map(func(_ context.Context, s string) string {
//		return strings.ToUpper(s)
//	}))
//	if err := m.Start(ctx); err != nil {
//		return err
//	}
//	subject.Next("hello")
//	sub.Unsubscribe()
//
// Within one flow messages are handled one at a time, so the sink sees them
// in source order. A failing sink only loses the message it failed on; a
// failing transformer ends its own flow and no other.
package mutator
