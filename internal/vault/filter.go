// Package vault holds the evidence-vault domain: the filter/query model over
// the evidence collection, the selection model for bulk actions, and the
// version-upload workflow.
package vault

import (
	"strings"
	"time"

	"evidence-vault/internal/domain"
)

// ExpiryFilter buckets documents by expiry date relative to "now".
type ExpiryFilter string

const (
	ExpiryAll          ExpiryFilter = ""
	ExpiryExpired      ExpiryFilter = "expired"
	ExpiryExpiringSoon ExpiryFilter = "expiring-soon"
)

// FilterState is the single source of truth for what is visible in the vault
// list. The zero value applies no constraints; "all" and "" are equivalent for
// every dimension. It round-trips losslessly through a flat string map so it
// can live in a shareable link.
type FilterState struct {
	Search  string
	DocType string
	Status  string
	Expiry  ExpiryFilter
}

// HasActive reports whether any dimension constrains the result. Used to
// decide whether a reset affordance should be offered.
func (f FilterState) HasActive() bool {
	return f.Search != "" || f.DocType != "" || f.Status != "" || f.Expiry != ExpiryAll
}

// Apply returns the subset of records passing every active predicate,
// preserving input order. It is a pure function of its arguments; the expiry
// bucket is the only time-dependent dimension, so callers inject now.
func (f FilterState) Apply(records []domain.Evidence, now time.Time) []domain.Evidence {
	out := make([]domain.Evidence, 0, len(records))
	for _, ev := range records {
		if f.matches(ev, now) {
			out = append(out, ev)
		}
	}
	return out
}

func (f FilterState) matches(ev domain.Evidence, now time.Time) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(ev.Name), q) &&
			!strings.Contains(strings.ToLower(ev.DocType), q) {
			return false
		}
	}
	if f.DocType != "" && ev.DocType != f.DocType {
		return false
	}
	if f.Status != "" && string(ev.Status) != f.Status {
		return false
	}
	switch f.Expiry {
	case ExpiryExpired:
		// Records without an expiry date cannot be expired.
		if !ev.IsExpired(now) {
			return false
		}
	case ExpiryExpiringSoon:
		if !ev.IsExpiringSoon(now) {
			return false
		}
	}
	return true
}
