package service

import (
	"context"
	"time"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/store"
	"github.com/MKhiriev/health-portal/models"
)

type appInfoService struct {
	appVersion string

	cfg   *config.StructuredConfig
	state StoreStateReporter
	now   func() time.Time

	logger *logger.Logger
}

// NewAppInfoService builds the service behind the version, health and debug
// endpoints. The version injected at build time wins over the configured one.
func NewAppInfoService(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, state StoreStateReporter, logger *logger.Logger) (AppInfoService, error) {
	version := buildInfo.BuildVersion()
	if version == "" {
		version = cfg.App.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		cfg:        cfg,
		state:      state,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports the process as healthy and the remote store as connected
// only while the connector holds an established handle.
func (s *appInfoService) Health(ctx context.Context) models.Health {
	database := models.DatabaseDisconnected
	if s.connected() {
		database = models.DatabaseConnected
	}

	return models.Health{
		Status:    models.HealthStatusHealthy,
		Timestamp: s.now().UTC(),
		Database:  database,
	}
}

// Debug tells which secrets are configured without revealing them.
func (s *appInfoService) Debug(ctx context.Context) models.DebugInfo {
	secretSet := s.cfg.SecretKey != "" && s.cfg.SecretKey != config.InsecureDefaultSecretKey

	return models.DebugInfo{
		DatabaseConnected: s.connected(),
		EnvironmentVariablesSet: map[string]bool{
			"SECRET_KEY":      secretSet,
			"CLOUDANT_APIKEY": s.cfg.Cloudant.APIKey != "",
			"CLOUDANT_URL":    s.cfg.Cloudant.URL != "",
		},
		CurrentConfig: models.DebugConfig{
			SecretKeyLength:    len(s.cfg.SecretKey),
			CloudantConfigured: s.cfg.Cloudant.Configured(),
			FallbackDriver:     s.cfg.Fallback.Driver,
		},
	}
}

func (s *appInfoService) connected() bool {
	return s.state != nil && s.state.State() == store.StateConnected
}
