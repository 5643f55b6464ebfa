package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/health-portal/internal/logger"
)

// writeJSON encodes data and writes it with statusCode. Nothing has been sent
// when encoding fails, so the client gets a bare 500 instead.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err = w.Write(payload); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("response body not delivered")
	}
}
