package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/health-portal/models"
)

const usersTable = "users"

var userColumns = []string{
	"id",
	"username",
	"password_hash",
	"role",
	"status",
	"created_at",
	"attributes",
}

// sqlite uses "?" placeholders
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildInsertUserQuery builds the INSERT of a new account. The ID is left to
// the AUTOINCREMENT column.
func buildInsertUserQuery(user models.User) (string, []any, error) {
	attributes := map[string]string{}
	if user.Attributes != nil {
		attributes = user.Attributes.Fields()
	}

	encoded, err := json.Marshal(attributes)
	if err != nil {
		return "", nil, fmt.Errorf("%w: encode attributes: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := sqliteBuilder.
		Insert(usersTable).
		Columns("username", "password_hash", "role", "status", "created_at", "attributes").
		Values(
			user.Username,
			user.PasswordHash,
			string(user.Role),
			string(user.Status),
			user.CreatedAt.UTC().Format(time.RFC3339Nano),
			string(encoded),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUserByUsernameQuery builds the exact-match lookup of one
// account. SQLite compares TEXT with BINARY collation, so the match is
// case-sensitive.
func buildSelectUserByUsernameQuery(username string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
