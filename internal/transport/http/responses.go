package httptransport

import (
	"evidence-vault/internal/domain"
	"evidence-vault/internal/vault"
)

// Response DTOs render calendar dates in the 2006-01-02 wire format instead of
// RFC 3339 timestamps.

type versionResponse struct {
	ID         string `json:"id"`
	Version    int    `json:"version"`
	UploadedAt string `json:"uploadedAt"`
	UploadedBy string `json:"uploadedBy"`
	Notes      string `json:"notes"`
	FileSize   string `json:"fileSize"`
	FileName   string `json:"fileName"`
}

type evidenceResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	DocType     string            `json:"docType"`
	Status      string            `json:"status"`
	ExpiryDate  string            `json:"expiryDate,omitempty"`
	LastUpdated string            `json:"lastUpdated"`
	Description string            `json:"description,omitempty"`
	Versions    []versionResponse `json:"versions"`
}

type requestResponse struct {
	ID            string `json:"id"`
	DocType       string `json:"docType"`
	DueDate       string `json:"dueDate"`
	Status        string `json:"status"`
	BuyerName     string `json:"buyerName"`
	Notes         string `json:"notes,omitempty"`
	FulfilledWith string `json:"fulfilledWith,omitempty"`
}

type filterResponse struct {
	Search  string `json:"search,omitempty"`
	DocType string `json:"docType,omitempty"`
	Status  string `json:"status,omitempty"`
	Expiry  string `json:"expiry,omitempty"`
}

type evidenceListResponse struct {
	Items      []evidenceResponse `json:"items"`
	Count      int                `json:"count"`
	Filters    filterResponse     `json:"filters"`
	HasFilters bool               `json:"hasActiveFilters"`
}

func toVersionResponse(v domain.EvidenceVersion) versionResponse {
	return versionResponse{
		ID:         v.ID,
		Version:    v.Version,
		UploadedAt: v.UploadedAt.Format(domain.DateLayout),
		UploadedBy: v.UploadedBy,
		Notes:      v.Notes,
		FileSize:   v.FileSize,
		FileName:   v.FileName,
	}
}

func toEvidenceResponse(ev domain.Evidence) evidenceResponse {
	resp := evidenceResponse{
		ID:          ev.ID,
		Name:        ev.Name,
		DocType:     ev.DocType,
		Status:      string(ev.Status),
		LastUpdated: ev.LastUpdated.Format(domain.DateLayout),
		Description: ev.Description,
		Versions:    make([]versionResponse, 0, len(ev.Versions)),
	}
	if ev.ExpiryDate != nil {
		resp.ExpiryDate = ev.ExpiryDate.Format(domain.DateLayout)
	}
	for _, v := range ev.Versions {
		resp.Versions = append(resp.Versions, toVersionResponse(v))
	}
	return resp
}

func toRequestResponse(req domain.BuyerRequest) requestResponse {
	return requestResponse{
		ID:            req.ID,
		DocType:       req.DocType,
		DueDate:       req.DueDate.Format(domain.DateLayout),
		Status:        string(req.Status),
		BuyerName:     req.BuyerName,
		Notes:         req.Notes,
		FulfilledWith: req.FulfilledWith,
	}
}

func toFilterResponse(f vault.FilterState) filterResponse {
	return filterResponse{
		Search:  f.Search,
		DocType: f.DocType,
		Status:  f.Status,
		Expiry:  string(f.Expiry),
	}
}

func toEvidenceListResponse(result vault.ListResult) evidenceListResponse {
	items := make([]evidenceResponse, 0, len(result.Items))
	for _, ev := range result.Items {
		items = append(items, toEvidenceResponse(ev))
	}
	return evidenceListResponse{
		Items:      items,
		Count:      len(items),
		Filters:    toFilterResponse(result.Filters),
		HasFilters: result.HasFilters,
	}
}
