package http

import (
	"net/http"

	"github.com/MKhiriev/health-portal/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withCORS())
	router.Use(withSecurityHeaders)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	router.Post("/api/register", h.register)
	router.Post("/api/login", h.login)
	router.Get("/api/check-auth", h.checkAuth)
	router.Post("/api/logout", h.logout)

	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)
	if h.debugEndpoint {
		router.Get("/api/debug", h.debug)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"error": app.MsgEndpointNotFound}, http.StatusNotFound)
}
