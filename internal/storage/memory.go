package storage

import (
	"context"
	"sync"

	"evidence-vault/internal/domain"
)

// In-memory stores keep the demo dataset lightweight and testable. They
// intentionally favor clarity over performance. An order slice preserves seed
// order for List, which the filter model depends on.
type InMemoryEvidenceStore struct {
	mu      sync.RWMutex
	records map[string]domain.Evidence
	order   []string
}

func NewInMemoryEvidenceStore() *InMemoryEvidenceStore {
	return &InMemoryEvidenceStore{records: make(map[string]domain.Evidence)}
}

// Add appends a record; used by seeding.
func (s *InMemoryEvidenceStore) Add(_ context.Context, ev domain.Evidence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[ev.ID]; !exists {
		s.order = append(s.order, ev.ID)
	}
	s.records[ev.ID] = cloneEvidence(ev)
	return nil
}

func (s *InMemoryEvidenceStore) List(_ context.Context) ([]domain.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Evidence, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneEvidence(s.records[id]))
	}
	return out, nil
}

func (s *InMemoryEvidenceStore) FindByID(_ context.Context, id string) (domain.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ev, ok := s.records[id]; ok {
		return cloneEvidence(ev), nil
	}
	return domain.Evidence{}, ErrNotFound
}

func (s *InMemoryEvidenceStore) Update(_ context.Context, ev domain.Evidence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[ev.ID]; !ok {
		return ErrNotFound
	}
	s.records[ev.ID] = cloneEvidence(ev)
	return nil
}

// cloneEvidence copies the record deeply enough that callers can't mutate
// stored version history through returned slices.
func cloneEvidence(ev domain.Evidence) domain.Evidence {
	cp := ev
	cp.Versions = append([]domain.EvidenceVersion{}, ev.Versions...)
	if ev.ExpiryDate != nil {
		d := *ev.ExpiryDate
		cp.ExpiryDate = &d
	}
	return cp
}

type InMemoryRequestStore struct {
	mu       sync.RWMutex
	requests map[string]domain.BuyerRequest
	order    []string
}

func NewInMemoryRequestStore() *InMemoryRequestStore {
	return &InMemoryRequestStore{requests: make(map[string]domain.BuyerRequest)}
}

func (s *InMemoryRequestStore) Add(_ context.Context, req domain.BuyerRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[req.ID]; !exists {
		s.order = append(s.order, req.ID)
	}
	s.requests[req.ID] = req
	return nil
}

func (s *InMemoryRequestStore) List(_ context.Context) ([]domain.BuyerRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.BuyerRequest, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.requests[id])
	}
	return out, nil
}

func (s *InMemoryRequestStore) FindByID(_ context.Context, id string) (domain.BuyerRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if req, ok := s.requests[id]; ok {
		return req, nil
	}
	return domain.BuyerRequest{}, ErrNotFound
}

func (s *InMemoryRequestStore) Update(_ context.Context, req domain.BuyerRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[req.ID]; !ok {
		return ErrNotFound
	}
	s.requests[req.ID] = req
	return nil
}
