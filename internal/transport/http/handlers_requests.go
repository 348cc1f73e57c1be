package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"evidence-vault/internal/requests"
	pkgerrors "evidence-vault/pkg/errors"
)

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	all, err := h.requests.List(r.Context())
	if err != nil {
		h.logError(r, "list requests", err)
		writeError(w, err)
		return
	}
	stats, err := h.requests.Stats(r.Context())
	if err != nil {
		h.logError(r, "request stats", err)
		writeError(w, err)
		return
	}

	items := make([]requestResponse, 0, len(all))
	for _, req := range all {
		items = append(items, toRequestResponse(req))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"stats": stats,
	})
}

func (h *Handler) handleRequestMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.requests.Matches(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]evidenceResponse, 0, len(matches))
	for _, ev := range matches {
		items = append(items, toEvidenceResponse(ev))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

type fulfillRequestBody struct {
	Method      string `json:"method"`
	EvidenceID  string `json:"evidenceId,omitempty"`
	NewDocName  string `json:"newDocName,omitempty"`
	NewDocNotes string `json:"newDocNotes,omitempty"`
}

func (h *Handler) handleFulfillRequest(w http.ResponseWriter, r *http.Request) {
	var body fulfillRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, pkgerrors.New(pkgerrors.CodeBadRequest, "invalid request body"))
		return
	}

	session := requests.FulfillmentSession{
		Method:      requests.FulfillMethod(body.Method),
		EvidenceID:  body.EvidenceID,
		NewDocName:  body.NewDocName,
		NewDocNotes: body.NewDocNotes,
	}
	req, err := h.requests.Fulfill(r.Context(), chi.URLParam(r, "id"), session)
	if err != nil {
		h.logError(r, "fulfill request", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(req))
}
