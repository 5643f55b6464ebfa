package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/health-portal/internal/app"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/service"
	"github.com/MKhiriev/health-portal/internal/utils"
	"github.com/MKhiriev/health-portal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	raw, err := readJSONBody(w, r, &request)
	if err != nil {
		writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	attributes, err := models.NewRoleAttributes(models.Role(request.Role), raw)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), app.MsgRegistrationFailed)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, request.Registration(attributes))
	if err != nil {
		writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")

	writeJSON(w, r, models.RegisterResponse{
		Success: true,
		Message: app.MsgRegistrationSuccessful,
		UserID:  user.ID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if _, err := readJSONBody(w, r, &credentials); err != nil {
		writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	authenticated, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			writeErrorMessage(w, r, http.StatusBadRequest, app.MsgCredentialsRequired)
			return
		}
		writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	// a browser logging in again drops the session it held before
	if previous, err := r.Cookie(h.cookie.name); err == nil {
		h.services.SessionService.Revoke(ctx, previous.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    authenticated.Token.SignedString,
		Path:     "/",
		MaxAge:   int(h.cookie.ttl.Seconds()),
		Expires:  authenticated.Token.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().Str("user_id", authenticated.User.ID).Msg("user successfully logged in")

	writeJSON(w, r, models.LoginResponse{
		Success: true,
		Message: app.MsgLoginSuccessful,
		User:    authenticated.User.Public(),
	}, http.StatusOK)
}

func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeJSON(w, r, models.CheckAuthResponse{Authenticated: false}, http.StatusOK)
		return
	}

	writeJSON(w, r, models.CheckAuthResponse{
		Authenticated: true,
		Role:          session.Role,
		Username:      session.Username,
	}, http.StatusOK)
}

// logout always succeeds: a missing, expired or foreign cookie leaves nothing
// to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookie.name); err == nil {
		h.services.SessionService.Revoke(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, r, models.MessageResponse{Success: true, Message: app.MsgLoggedOut}, http.StatusOK)
}
