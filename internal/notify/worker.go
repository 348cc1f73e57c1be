package notify

import "context"

// Worker consumes notifications from a channel and forwards them to a sink.
// It keeps slow sinks (like a broker) off the request path.
type Worker struct {
	sink  Sink
	inbox <-chan Notification
}

func NewWorker(sink Sink, inbox <-chan Notification) *Worker {
	return &Worker{sink: sink, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n := <-w.inbox:
			if err := w.sink.Append(ctx, n); err != nil {
				return err
			}
		}
	}
}

// ChannelSink bridges Emit calls onto a worker inbox. Appends never block: if
// the inbox is full the notification is dropped, which is acceptable for a
// fire-and-forget boundary.
type ChannelSink chan Notification

func (c ChannelSink) Append(_ context.Context, n Notification) error {
	select {
	case c <- n:
	default:
	}
	return nil
}

// Fanout duplicates every notification to all sinks, stopping at the first
// error so callers see delivery failures from durable sinks.
type Fanout []Sink

func (f Fanout) Append(ctx context.Context, n Notification) error {
	for _, sink := range f {
		if err := sink.Append(ctx, n); err != nil {
			return err
		}
	}
	return nil
}
