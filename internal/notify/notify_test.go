package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherDefaults(t *testing.T) {
	sink := NewInMemorySink()
	pub := NewPublisher(sink)

	err := pub.Emit(context.Background(), Notification{Title: "Request fulfilled"})
	require.NoError(t, err)

	events, err := sink.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Time.IsZero(), "timestamp is defaulted")
	assert.Equal(t, SeverityNormal, events[0].Severity)
}

func TestPublisherKeepsExplicitFields(t *testing.T) {
	sink := NewInMemorySink()
	pub := NewPublisher(sink)
	at := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	err := pub.Emit(context.Background(), Notification{
		Time:     at,
		Title:    "Selection required",
		Severity: SeverityDestructive,
	})
	require.NoError(t, err)

	events, _ := sink.List(context.Background())
	require.Len(t, events, 1)
	assert.Equal(t, at, events[0].Time)
	assert.Equal(t, SeverityDestructive, events[0].Severity)
}

func TestInMemorySinkOrder(t *testing.T) {
	sink := NewInMemorySink()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, sink.Append(ctx, Notification{Title: title}))
	}

	events, err := sink.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].Title)
	assert.Equal(t, "third", events[2].Title)
}

func TestFanout(t *testing.T) {
	a := NewInMemorySink()
	b := NewInMemorySink()

	err := Fanout{a, b}.Append(context.Background(), Notification{Title: "mirrored"})
	require.NoError(t, err)

	for _, sink := range []*InMemorySink{a, b} {
		events, _ := sink.List(context.Background())
		assert.Len(t, events, 1)
	}
}

func TestChannelSinkNeverBlocks(t *testing.T) {
	inbox := make(ChannelSink, 1)
	ctx := context.Background()

	require.NoError(t, inbox.Append(ctx, Notification{Title: "kept"}))
	require.NoError(t, inbox.Append(ctx, Notification{Title: "dropped"}), "full inbox drops instead of blocking")

	assert.Len(t, inbox, 1)
	assert.Equal(t, "kept", (<-inbox).Title)
}

func TestWorkerDrainsInbox(t *testing.T) {
	sink := NewInMemorySink()
	inbox := make(chan Notification, 2)
	worker := NewWorker(sink, inbox)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- Notification{Title: "queued"}

	require.Eventually(t, func() bool {
		events, err := sink.List(context.Background())
		return err == nil && len(events) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
