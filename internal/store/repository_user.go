package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table of the
// fallback database.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating sqlite user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the ID assigned by
// the AUTOINCREMENT column.
//
// Error handling:
//   - UNIQUE constraint on username → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		result, err = r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error reading inserted id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.ID = strconv.FormatInt(id, 10)

	return user, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
// No matching row is reported as found == false with a nil error.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, false, err
	}

	var row userRow
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&row.ID, &row.Username, &row.PasswordHash, &row.Role, &row.Status, &row.CreatedAt, &row.Attributes,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error querying user")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user, err := row.toUser()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error decoding user row")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, true, nil
}

type userRow struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    string
	Attributes   string
}

func (r userRow) toUser() (models.User, error) {
	role := models.Role(r.Role)

	attributes, err := models.NewRoleAttributes(role, []byte(r.Attributes))
	if err != nil {
		return models.User{}, err
	}

	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("parse created_at: %w", err)
	}

	return models.User{
		ID:           strconv.FormatInt(r.ID, 10),
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         role,
		Status:       models.UserStatus(r.Status),
		CreatedAt:    createdAt,
		Attributes:   attributes,
	}, nil
}
