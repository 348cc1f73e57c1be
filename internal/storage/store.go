package storage

import (
	"context"

	"evidence-vault/internal/domain"
)

// Stores are interface-driven to keep the domain logic testable and to allow
// swapping the in-memory demo dataset for real persistence without rewiring
// business code. List order is the seed order; callers rely on it being stable.
type EvidenceStore interface {
	List(ctx context.Context) ([]domain.Evidence, error)
	FindByID(ctx context.Context, id string) (domain.Evidence, error)
	// Update replaces the whole record. Partial in-place mutation is never
	// exposed to readers.
	Update(ctx context.Context, ev domain.Evidence) error
}

type RequestStore interface {
	List(ctx context.Context) ([]domain.BuyerRequest, error)
	FindByID(ctx context.Context, id string) (domain.BuyerRequest, error)
	Update(ctx context.Context, req domain.BuyerRequest) error
}
