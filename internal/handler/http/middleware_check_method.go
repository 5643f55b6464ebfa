// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered through
// [chi.Mux.MethodNotAllowed]. A known path requested with a method it does not
// serve is answered exactly like an unknown path (404 with the standard JSON
// body), so callers cannot probe which methods a route accepts.
//
// Matching goes through [chi.Mux.Match], so parameterised routes are resolved
// the same way the router resolves them.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}
