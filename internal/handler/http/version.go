package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}

// debug is only routed when the debug endpoint is enabled in configuration.
func (h *Handler) debug(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.Debug(r.Context()), http.StatusOK)
}
