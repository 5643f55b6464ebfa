package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/models"
)

// failoverUserRepository routes every call to the remote store while it is
// available and to the fallback store otherwise. A remote call that fails
// mid-operation is retried once against the fallback store.
type failoverUserRepository struct {
	provider DocumentStoreProvider
	remote   UserRepository
	fallback UserRepository
	logger   *logger.Logger
}

// NewFailoverUserRepository constructs the [UserRepository] the account
// service talks to. The active store is chosen per call, so the service never
// needs to know which one served it.
func NewFailoverUserRepository(provider DocumentStoreProvider, remote, fallback UserRepository, logger *logger.Logger) UserRepository {
	return &failoverUserRepository{
		provider: provider,
		remote:   remote,
		fallback: fallback,
		logger:   logger,
	}
}

// CreateUser persists user in the active store. A username already held by
// the fallback store is rejected even while the remote store is active.
// Errors other than [ErrUsernameTaken] are returned wrapped in
// [ErrStoreUnavailable] once both paths have been tried.
func (r *failoverUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if r.provider.Available(ctx) {
		// accounts created during an outage stay in the fallback store
		_, taken, err := r.fallback.FindUserByUsername(ctx, user.Username)
		if err != nil {
			log.Err(err).Str("func", "*failoverUserRepository.CreateUser").Msg("fallback store failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		if taken {
			return models.User{}, ErrUsernameTaken
		}

		created, err := r.remote.CreateUser(ctx, user)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, ErrStoreUnavailable) {
			return models.User{}, err
		}
		log.Warn().Err(err).
			Str("func", "*failoverUserRepository.CreateUser").
			Msg("remote store failed, retrying on fallback store")
	}

	created, err := r.fallback.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return models.User{}, err
		}
		log.Err(err).Str("func", "*failoverUserRepository.CreateUser").Msg("fallback store failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return created, nil
}

// FindUserByUsername looks the account up in the active store. The fallback
// store is consulted when the remote lookup fails or finds nothing, so
// accounts registered during an outage stay visible after recovery.
func (r *failoverUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	if r.provider.Available(ctx) {
		user, found, err := r.remote.FindUserByUsername(ctx, username)
		if err == nil && found {
			return user, true, nil
		}
		if err == nil {
			return r.findInFallback(ctx, username)
		}
		log.Warn().Err(err).
			Str("func", "*failoverUserRepository.FindUserByUsername").
			Msg("remote store failed, retrying on fallback store")
	}

	return r.findInFallback(ctx, username)
}

func (r *failoverUserRepository) findInFallback(ctx context.Context, username string) (models.User, bool, error) {
	user, found, err := r.fallback.FindUserByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*failoverUserRepository.FindUserByUsername").Msg("fallback store failed")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return user, found, nil
}
