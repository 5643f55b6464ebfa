package http

import (
	"time"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/service"
)

// cookieSettings describes the session cookie written on login.
type cookieSettings struct {
	name   string
	secure bool
	ttl    time.Duration
}

type Handler struct {
	services *service.Services

	cookie         cookieSettings
	allowedOrigins []string
	requestTimeout time.Duration
	debugEndpoint  bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookie: cookieSettings{
			name:   cfg.Auth.CookieName,
			secure: cfg.Auth.CookieSecure,
			ttl:    cfg.Auth.SessionTTL,
		},
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		debugEndpoint:  cfg.App.DebugEndpoint,
		logger:         logger,
	}
}
