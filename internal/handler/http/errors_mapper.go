package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/health-portal/internal/app"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/service"
	"github.com/MKhiriev/health-portal/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyRequestBody:    http.StatusBadRequest,
	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrMissingFields:       http.StatusBadRequest,
	service.ErrDuplicateUsername:   http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrStoreUnavailable:    http.StatusServiceUnavailable,
}

var errorMessageMap = map[error]string{
	ErrEmptyRequestBody:    app.MsgNoDataProvided,
	ErrRequestBodyTooLarge: app.MsgInvalidPayload,

	service.ErrInvalidDataProvided: app.MsgInvalidPayload,
	service.ErrMissingFields:       app.MsgMissingRequiredFields,
	service.ErrDuplicateUsername:   app.MsgUsernameExists,
	service.ErrInvalidCredentials:  app.MsgInvalidCredentials,
	service.ErrStoreUnavailable:    app.MsgDatabaseUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-safe message for err, or fallback when
// err is not one the API describes to clients.
func messageFromError(err error, fallback string) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return fallback
}

// writeError logs err and answers with the mapped status and message. Raw
// error text never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	writeErrorMessage(w, r, status, messageFromError(err, fallback))
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, models.ErrorResponse{Success: false, Error: message}, status)
}
