package domain

import "time"

// DateLayout is the calendar-date wire format used across the API and seeds.
const DateLayout = "2006-01-02"

// ExpiringSoonWindow bounds the "expiring-soon" bucket relative to now.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// EvidenceStatus tracks a document through its review lifecycle.
type EvidenceStatus string

const (
	EvidenceStatusApproved EvidenceStatus = "approved"
	EvidenceStatusPending  EvidenceStatus = "pending"
	EvidenceStatusExpired  EvidenceStatus = "expired"
	EvidenceStatusDraft    EvidenceStatus = "draft"
)

// EvidenceVersion is one immutable upload of a document. Versions are never
// edited or deleted once appended.
type EvidenceVersion struct {
	ID         string    `json:"id"`
	Version    int       `json:"version"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
	Notes      string    `json:"notes"`
	FileSize   string    `json:"fileSize"`
	FileName   string    `json:"fileName"`
}

// Evidence is a compliance document record with its version history. Versions
// are ordered newest first; Versions[0] is the latest upload.
type Evidence struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	DocType     string            `json:"docType"`
	Status      EvidenceStatus    `json:"status"`
	ExpiryDate  *time.Time        `json:"expiryDate,omitempty"`
	Versions    []EvidenceVersion `json:"versions"`
	LastUpdated time.Time         `json:"lastUpdated"`
	Description string            `json:"description,omitempty"`
}

// LatestVersion returns the newest upload. Evidence always carries at least one
// version, but a zero value is returned defensively for malformed records.
func (e Evidence) LatestVersion() EvidenceVersion {
	if len(e.Versions) == 0 {
		return EvidenceVersion{}
	}
	return e.Versions[0]
}

// IsExpired reports whether the document's expiry date lies strictly before
// now. Documents without an expiry date never expire.
func (e Evidence) IsExpired(now time.Time) bool {
	return e.ExpiryDate != nil && e.ExpiryDate.Before(now)
}

// IsExpiringSoon reports whether the expiry date falls inside the window
// [now, now+30d]. Already-expired documents and documents without an expiry
// date are excluded.
func (e Evidence) IsExpiringSoon(now time.Time) bool {
	if e.ExpiryDate == nil {
		return false
	}
	d := *e.ExpiryDate
	return !d.Before(now) && !d.After(now.Add(ExpiringSoonWindow))
}

// ValidVersionHistory checks the version-history invariant: at least one
// version, numbered as a contiguous sequence ending at len(versions) when read
// newest first.
func (e Evidence) ValidVersionHistory() bool {
	n := len(e.Versions)
	if n == 0 {
		return false
	}
	for i, v := range e.Versions {
		if v.Version != n-i {
			return false
		}
	}
	return true
}
