package service

import (
	"fmt"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/crypto"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/store"
	"github.com/MKhiriev/health-portal/models"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, state StoreStateReporter, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, buildInfo, state, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	sessionService := NewSessionService(storages.SessionStorage, cfg.Auth, cfg.SecretKey, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, sessionService, logger),
		SessionService: sessionService,
		AppInfoService: appInfoService,
	}, nil
}
