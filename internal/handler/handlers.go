package handler

import (
	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/handler/grpc"
	"github.com/MKhiriev/health-portal/internal/handler/http"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport with an address in
// cfg.Server. The gRPC health handler follows the remote store state through
// subscriber.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, subscriber grpc.StateSubscriber, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(subscriber, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
