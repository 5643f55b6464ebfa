// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/utils"
)

// withSession resolves the session cookie, if any, and stores the live
// session in the request context under [utils.SessionCtxKey]. Requests without
// a valid session pass through anonymously; no route is rejected here.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.cookie.name)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, ok := h.services.SessionService.Validate(ctx, cookie.Value)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		l := logger.FromRequest(r).With().Str("user_id", session.UserID).Logger()
		ctx = l.WithContext(utils.WithSession(ctx, session))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
