package httptransport

import "net/http"

// handleListNotifications exposes the read side of the notification boundary:
// everything raised since process start, in emission order.
func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	events, err := h.notifications.List(r.Context())
	if err != nil {
		h.logError(r, "list notifications", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": events, "count": len(events)})
}
