package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/logger"
)

// Storages aggregates the persistence dependencies of the service layer.
type Storages struct {
	UserRepository UserRepository
	SessionStorage SessionStorage

	db *DB
}

// NewStorages wires the failover account repository (remote store through
// provider, fallback store chosen by cfg.Driver) and the session storage.
// Opening the SQLite fallback is the only step that can fail.
func NewStorages(ctx context.Context, cfg config.Fallback, provider DocumentStoreProvider, logger *logger.Logger) (*Storages, error) {
	storages := &Storages{
		SessionStorage: NewSessionStorage(logger),
	}

	var fallback UserRepository
	switch cfg.Driver {
	case config.FallbackDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error opening fallback store: %w", err)
		}
		storages.db = db
		fallback = NewUserRepository(db, logger)
	default:
		fallback = NewMemoryUserRepository(logger)
	}

	storages.UserRepository = NewFailoverUserRepository(
		provider,
		NewRemoteUserRepository(provider, logger),
		fallback,
		logger,
	)

	logger.Info().Str("fallback_driver", cfg.Driver).Msg("storages initialized")

	return storages, nil
}

// Close releases the fallback database, if one was opened.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
