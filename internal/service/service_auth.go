package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/health-portal/internal/crypto"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/store"
	"github.com/MKhiriev/health-portal/internal/validators"
	"github.com/MKhiriev/health-portal/models"
)

// dummyPassword seeds the hash verified for unknown usernames.
const dummyPassword = "health-portal-unknown-user"

// authService is the concrete implementation of AuthService.
// It validates registration and login input, hashes and verifies passwords
// through a PasswordHasher, and persists accounts through a UserRepository.
type authService struct {
	// userRepository is the failover account store used to create and look
	// up users.
	userRepository store.UserRepository

	// hasher produces and checks the salted password hashes.
	hasher crypto.PasswordHasher

	// validator checks registration and login input for required fields.
	validator validators.Validator

	// sessionService issues the session returned by a successful login.
	sessionService SessionService

	// now stamps CreatedAt on new accounts.
	now func() time.Time

	// dummyHash is verified against when the username is unknown, so an
	// unknown username costs the same hashing work as a wrong password.
	dummyHash     string
	dummyHashOnce sync.Once

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, sessionService SessionService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewAccountValidator(),
		sessionService: sessionService,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted user (with its store-assigned ID and without the
// password hash) or:
//   - ErrMissingFields if username, password or role is empty.
//   - ErrDuplicateUsername if the username is already taken.
//   - ErrStoreUnavailable if no store could serve the request.
func (a *authService) RegisterUser(ctx context.Context, reg models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, reg); err != nil {
		log.Warn().Err(err).Str("username", reg.Username).Msg("registration with missing fields")
		return models.User{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	_, found, err := a.userRepository.FindUserByUsername(ctx, reg.Username)
	if err != nil {
		log.Err(err).Str("username", reg.Username).Msg("username lookup failed")
		return models.User{}, mapStoreError(err)
	}
	if found {
		log.Info().Str("username", reg.Username).Msg("username already taken")
		return models.User{}, ErrDuplicateUsername
	}

	hash, err := a.hasher.Hash(reg.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	attributes := reg.Attributes
	if attributes == nil {
		attributes, _ = models.NewRoleAttributes(reg.Role, nil)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     reg.Username,
		PasswordHash: hash,
		Role:         reg.Role,
		Status:       models.StatusActive,
		CreatedAt:    a.now().UTC(),
		Attributes:   attributes,
	})
	if err != nil {
		log.Err(err).Str("username", reg.Username).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	created.PasswordHash = ""
	return created, nil
}

// Login verifies credentials and issues a session.
//
// Returns ErrInvalidCredentials both for an unknown username and for a wrong
// password. A stored hash that cannot be parsed is reported as an internal
// error wrapping crypto.ErrMalformedHash.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Authenticated, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Authenticated{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	user, found, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user lookup failed")
		return models.Authenticated{}, mapStoreError(err)
	}
	if !found {
		log.Info().Str("username", credentials.Username).Msg("login for unknown username")
		a.verifyAgainstDummy(ctx, credentials.Password)
		return models.Authenticated{}, ErrInvalidCredentials
	}

	ok, err := a.hasher.Verify(credentials.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("stored password hash is unusable")
		return models.Authenticated{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.Authenticated{}, ErrInvalidCredentials
	}

	token, err := a.sessionService.Issue(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("session issuance failed")
		return models.Authenticated{}, fmt.Errorf("error issuing session: %w", err)
	}

	user.PasswordHash = ""
	return models.Authenticated{User: user, Token: token}, nil
}

// verifyAgainstDummy burns one password verification. The dummy hash is
// produced by the configured hasher on first use, so it carries the same cost
// as real account hashes.
func (a *authService) verifyAgainstDummy(ctx context.Context, password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Msg("error preparing dummy password hash")
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash == "" {
		return
	}
	_, _ = a.hasher.Verify(password, a.dummyHash)
}

// mapStoreError translates store errors into service errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return ErrDuplicateUsername
	case errors.Is(err, store.ErrStoreUnavailable):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected store error: %w", err)
	}
}
