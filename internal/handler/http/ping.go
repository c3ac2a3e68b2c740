package http

import (
	"net/http"
)

// ping reports whether the service and its storage backend are up.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, "pong", http.StatusOK)
}
