package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/health-portal/internal/adapter"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/models"
)

// UsersCollection is the remote collection holding account documents.
const UsersCollection = "users"

const userDocumentType = "user"

// legacyTimestampLayout reads creation times written without a zone offset.
const legacyTimestampLayout = "2006-01-02T15:04:05.999999"

// userDocument is the common part of an account document. Role attributes
// are stored as sibling keys of the same JSON object.
type userDocument struct {
	ID        string `json:"_id,omitempty"`
	Rev       string `json:"_rev,omitempty"`
	Type      string `json:"type"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// remoteUserRepository stores accounts as documents in the remote store.
//
// Every failure, including a record that cannot be decoded, is returned
// wrapped in [ErrStoreUnavailable] so the caller can fall back. Connectivity
// faults are also reported to the provider so the connection is re-established
// on a later access.
type remoteUserRepository struct {
	provider DocumentStoreProvider
	logger   *logger.Logger
}

// NewRemoteUserRepository constructs a [UserRepository] backed by the
// "users" collection of the remote document store.
//
// Uniqueness of usernames is not enforced atomically by the remote store;
// the account service checks before inserting.
func NewRemoteUserRepository(provider DocumentStoreProvider, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating remote user repository")
	return &remoteUserRepository{
		provider: provider,
		logger:   logger,
	}
}

// CreateUser stores user as a new document and returns it with the
// store-assigned ID and revision.
func (r *remoteUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	docs, err := r.provider.Collection(ctx, UsersCollection)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	result, err := docs.PostDocument(ctx, UsersCollection, userToDocument(user))
	if err != nil {
		r.provider.ReportFailure(err)
		log.Err(err).
			Str("func", "*remoteUserRepository.CreateUser").
			Str("collection", UsersCollection).
			Msg("error storing user document")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	user.ID = result.ID
	user.Revision = result.Rev

	return user, nil
}

// FindUserByUsername runs an exact-match query on the username field and
// decodes the first matching document.
func (r *remoteUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	docs, err := r.provider.Collection(ctx, UsersCollection)
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	found, err := docs.Find(ctx, UsersCollection, adapter.FindQuery{
		Selector: map[string]any{"username": username},
		Limit:    1,
	})
	if err != nil {
		r.provider.ReportFailure(err)
		log.Err(err).
			Str("func", "*remoteUserRepository.FindUserByUsername").
			Str("collection", UsersCollection).
			Msg("error querying user documents")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if len(found) == 0 {
		return models.User{}, false, nil
	}

	user, err := documentToUser(found[0])
	if err != nil {
		log.Err(err).
			Str("func", "*remoteUserRepository.FindUserByUsername").
			Str("collection", UsersCollection).
			Msg("error decoding user document")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return user, true, nil
}

// userToDocument flattens the account into one JSON object: role attributes
// first, then the common fields, which always win on a key collision.
func userToDocument(user models.User) map[string]any {
	doc := make(map[string]any)
	if user.Attributes != nil {
		for key, value := range user.Attributes.Fields() {
			doc[key] = value
		}
	}

	doc["type"] = userDocumentType
	doc["username"] = user.Username
	doc["password"] = user.PasswordHash
	doc["role"] = string(user.Role)
	doc["status"] = string(user.Status)
	doc["created_at"] = user.CreatedAt.UTC().Format(time.RFC3339Nano)

	return doc
}

func documentToUser(raw json.RawMessage) (models.User, error) {
	var doc userDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	attributes, err := models.NewRoleAttributes(models.Role(doc.Role), raw)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	return models.User{
		ID:           doc.ID,
		Revision:     doc.Rev,
		Username:     doc.Username,
		PasswordHash: doc.Password,
		Role:         models.Role(doc.Role),
		Status:       models.UserStatus(doc.Status),
		CreatedAt:    parseCreatedAt(doc.CreatedAt),
		Attributes:   attributes,
	}, nil
}

// parseCreatedAt accepts RFC 3339 and zone-less ISO 8601 timestamps. An
// unreadable value yields the zero time rather than hiding the account.
func parseCreatedAt(value string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t
	}
	if t, err := time.Parse(legacyTimestampLayout, value); err == nil {
		return t
	}
	return time.Time{}
}
