package notify

import (
	"context"
	"sync"
)

// InMemorySink keeps raised notifications for the read API. Append-only.
type InMemorySink struct {
	mu     sync.RWMutex
	events []Notification
}

func NewInMemorySink() *InMemorySink {
	return &InMemorySink{}
}

func (s *InMemorySink) Append(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, n)
	return nil
}

// List returns raised notifications in emission order.
func (s *InMemorySink) List(_ context.Context) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Notification{}, s.events...), nil
}
