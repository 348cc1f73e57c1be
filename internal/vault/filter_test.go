package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evidence-vault/internal/domain"
	"evidence-vault/internal/storage"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func ids(records []domain.Evidence) []string {
	out := make([]string, len(records))
	for i, ev := range records {
		out[i] = ev.ID
	}
	return out
}

func TestApplyEmptyStateIsIdentity(t *testing.T) {
	records := storage.SeedEvidence()
	now := mustDate(t, "2025-01-01")

	got := FilterState{}.Apply(records, now)
	assert.Equal(t, ids(records), ids(got), "no active filters must pass every record in order")
}

func TestApplySearch(t *testing.T) {
	records := []domain.Evidence{
		{ID: "a", Name: "ISO 27001 Certificate", DocType: "ISO 27001 Certificate"},
		{ID: "b", Name: "Pen Test", DocType: "Penetration Test Report"},
	}
	now := time.Now()

	t.Run("case-insensitive match on name", func(t *testing.T) {
		got := FilterState{Search: "iso"}.Apply(records, now)
		assert.Equal(t, []string{"a"}, ids(got))
	})

	t.Run("matches docType substring", func(t *testing.T) {
		got := FilterState{Search: "penetration"}.Apply(records, now)
		assert.Equal(t, []string{"b"}, ids(got))
	})

	t.Run("no match", func(t *testing.T) {
		got := FilterState{Search: "hipaa"}.Apply(records, now)
		assert.Empty(t, got)
	})
}

func TestApplyDocTypeAndStatus(t *testing.T) {
	records := storage.SeedEvidence()
	now := mustDate(t, "2025-01-01")

	got := FilterState{DocType: "ISO 27001 Certificate"}.Apply(records, now)
	assert.Equal(t, []string{"ev-001"}, ids(got))

	got = FilterState{Status: "approved"}.Apply(records, now)
	assert.Equal(t, []string{"ev-001", "ev-002", "ev-005", "ev-006", "ev-008"}, ids(got))

	got = FilterState{Status: "approved", DocType: "Data Processing Agreement"}.Apply(records, now)
	assert.Empty(t, got, "predicates combine with AND")
}

func TestApplyExpiryBuckets(t *testing.T) {
	now := mustDate(t, "2025-01-01")
	past := mustDate(t, "2024-03-01")
	soon := mustDate(t, "2025-01-20")
	far := mustDate(t, "2025-03-01")

	records := []domain.Evidence{
		{ID: "none"},
		{ID: "past", ExpiryDate: &past},
		{ID: "soon", ExpiryDate: &soon},
		{ID: "far", ExpiryDate: &far},
	}

	t.Run("expired bucket", func(t *testing.T) {
		got := FilterState{Expiry: ExpiryExpired}.Apply(records, now)
		assert.Equal(t, []string{"past"}, ids(got))
	})

	t.Run("expiring-soon bucket", func(t *testing.T) {
		got := FilterState{Expiry: ExpiryExpiringSoon}.Apply(records, now)
		assert.Equal(t, []string{"soon"}, ids(got))
	})

	t.Run("all bucket passes everything", func(t *testing.T) {
		got := FilterState{Expiry: ExpiryAll}.Apply(records, now)
		assert.Len(t, got, 4)
	})
}

func TestHasActive(t *testing.T) {
	assert.False(t, FilterState{}.HasActive())
	assert.True(t, FilterState{Search: "iso"}.HasActive())
	assert.True(t, FilterState{DocType: "Insurance Certificate"}.HasActive())
	assert.True(t, FilterState{Status: "draft"}.HasActive())
	assert.True(t, FilterState{Expiry: ExpiryExpired}.HasActive())
}

func TestClearingFiltersRestoresIdentity(t *testing.T) {
	records := storage.SeedEvidence()
	now := mustDate(t, "2025-01-01")

	dirty := FilterState{Search: "iso", Status: "approved", Expiry: ExpiryExpired}
	require.True(t, dirty.HasActive())

	// Clearing is one atomic reset to the zero value.
	cleared := FilterState{}
	assert.False(t, cleared.HasActive())
	assert.Equal(t, ids(records), ids(cleared.Apply(records, now)))
}
