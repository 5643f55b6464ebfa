package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/models"
)

// memoryUserRepository keeps accounts in an ordered slice for the lifetime
// of the process. IDs are sequential integers starting at 1.
type memoryUserRepository struct {
	mu     sync.Mutex
	users  []models.User
	nextID int64

	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
// Its contents are lost when the process exits.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		nextID: 1,
		logger: logger,
	}
}

// CreateUser appends user with the next sequential ID. The uniqueness check
// and the append happen under one lock, so a duplicate username is always
// rejected with [ErrUsernameTaken].
func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.find(user.Username); ok {
		return models.User{}, ErrUsernameTaken
	}

	user.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++
	r.users = append(r.users, user)

	return user, nil
}

// FindUserByUsername scans the accounts in insertion order for an exact
// username match.
func (r *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.find(username)
	return user, ok, nil
}

func (r *memoryUserRepository) find(username string) (models.User, bool) {
	for _, user := range r.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}
