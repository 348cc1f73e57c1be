// Package notify implements the notification boundary: workflows raise an
// event after a successful mutation and never wait on delivery. Sinks fan the
// events out; the in-memory sink backs the read API, the Kafka sink mirrors
// them to a broker when one is configured.
package notify

import (
	"context"
	"time"
)

// Severity labels how a notification should be presented.
type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notification is emitted from domain logic to capture a user-facing outcome.
// Keep it transport-agnostic so stores and sinks can fan out.
type Notification struct {
	Time        time.Time `json:"time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
}

// Sink receives notifications. Implementations must be safe for concurrent use.
type Sink interface {
	Append(ctx context.Context, n Notification) error
}

// Publisher captures notifications. It is append-only and delegates to a sink
// so tests can swap destinations easily.
type Publisher struct {
	sink Sink
}

func NewPublisher(sink Sink) *Publisher {
	return &Publisher{sink: sink}
}

// Emit records a notification, defaulting its timestamp. Callers invoke it
// after their store mutation so observers never see a toast for a write that
// has not landed.
func (p *Publisher) Emit(ctx context.Context, n Notification) error {
	if n.Time.IsZero() {
		n.Time = time.Now()
	}
	if n.Severity == "" {
		n.Severity = SeverityNormal
	}
	return p.sink.Append(ctx, n)
}
