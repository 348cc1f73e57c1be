package httptransport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"evidence-vault/internal/domain"
	"evidence-vault/internal/table"
	"evidence-vault/internal/vault"
	pkgerrors "evidence-vault/pkg/errors"
	"evidence-vault/pkg/requestcontext"
)

// handleListEvidence serves the vault list view. The query string is the
// persisted filter state; responses echo the applied filters so clients can
// rebuild a shareable link.
func (h *Handler) handleListEvidence(w http.ResponseWriter, r *http.Request) {
	filters := vault.DecodeFilters(r.URL.Query())
	result, err := h.vault.List(r.Context(), filters)
	if err != nil {
		h.logError(r, "list evidence", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvidenceListResponse(result))
}

func (h *Handler) handleGetEvidence(w http.ResponseWriter, r *http.Request) {
	ev, err := h.vault.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvidenceResponse(ev))
}

type uploadVersionRequest struct {
	Notes      string `json:"notes"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	File       *struct {
		Name      string `json:"name"`
		SizeBytes int64  `json:"sizeBytes"`
	} `json:"file,omitempty"`
}

func (h *Handler) handleUploadVersion(w http.ResponseWriter, r *http.Request) {
	var body uploadVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "invalid request body"))
		return
	}

	session := vault.UploadSession{Notes: body.Notes}
	if body.ExpiryDate != "" {
		session.ExpiryDate = &body.ExpiryDate
	}
	if body.File != nil {
		session.File = &vault.FileDescriptor{Name: body.File.Name, SizeBytes: body.File.SizeBytes}
	}

	ev, err := h.vault.AppendVersion(r.Context(), chi.URLParam(r, "id"), session)
	if err != nil {
		h.logError(r, "upload version", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEvidenceResponse(ev))
}

// evidenceColumns defines the exported table, mirroring the list view's
// columns through typed accessors.
func evidenceColumns() []table.Column[domain.Evidence] {
	return []table.Column[domain.Evidence]{
		{Key: "name", Header: "Document Name", Value: func(e domain.Evidence) string { return e.Name }},
		{Key: "docType", Header: "Type", Value: func(e domain.Evidence) string { return e.DocType }},
		{Key: "status", Header: "Status", Value: func(e domain.Evidence) string { return string(e.Status) }},
		{Key: "expiryDate", Header: "Expiry", Value: func(e domain.Evidence) string {
			if e.ExpiryDate == nil {
				return ""
			}
			return e.ExpiryDate.Format(domain.DateLayout)
		}},
		{Key: "versions", Header: "Versions", Value: func(e domain.Evidence) string {
			return "v" + strconv.Itoa(len(e.Versions))
		}},
		{Key: "lastUpdated", Header: "Last Updated", Value: func(e domain.Evidence) string {
			return e.LastUpdated.Format(domain.DateLayout)
		}},
	}
}

func (h *Handler) handleExportEvidence(w http.ResponseWriter, r *http.Request) {
	filters := vault.DecodeFilters(r.URL.Query())
	result, err := h.vault.List(r.Context(), filters)
	if err != nil {
		h.logError(r, "export evidence", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="evidence.csv"`)
	if err := table.Render(w, evidenceColumns(), result.Items); err != nil {
		h.logError(r, "render evidence csv", err)
	}
}

type buildPackRequest struct {
	IDs []string `json:"ids"`
}

// handleBuildPack validates a selection against the current filtered view and
// records the pack action. Filters arrive in the query string exactly as for
// the list view.
func (h *Handler) handleBuildPack(w http.ResponseWriter, r *http.Request) {
	var body buildPackRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "invalid request body"))
		return
	}
	filters := vault.DecodeFilters(r.URL.Query())
	summary, err := h.vault.BuildPack(r.Context(), filters, body.IDs)
	if err != nil {
		h.logError(r, "build pack", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":        summary.Count,
		"allSelected":  summary.AllSelected,
		"someSelected": summary.SomeSelected,
	})
}

func (h *Handler) logError(r *http.Request, op string, err error) {
	if pkgerrors.CodeOf(err) == pkgerrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), op+" failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
		return
	}
	h.logger.WarnContext(r.Context(), op+" rejected",
		"request_id", requestcontext.RequestID(r.Context()),
		"error", err.Error(),
	)
}
