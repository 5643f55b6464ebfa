// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the portal backend.
//
// Accounts live in the remote document store while it is reachable and in a
// process-local fallback store (in-memory or SQLite) otherwise. [Connector]
// owns the remote connection state; [NewFailoverUserRepository] picks the
// active store per call so the service layer never sees the difference.
// Sessions are kept in process memory only.
package store

import (
	"context"

	"github.com/MKhiriev/health-portal/internal/adapter"
	"github.com/MKhiriev/health-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up accounts.
//
// FindUserByUsername separates the normal "no such account" outcome
// (found == false, err == nil) from a fault (err != nil).
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (user models.User, found bool, err error)
}

// SessionStorage keeps server-side sessions.
type SessionStorage interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, id string) (models.Session, bool)
	Delete(ctx context.Context, id string)
}

// DocumentStoreProvider hands out ready-to-use handles to the remote store.
// [Connector] is the production implementation.
type DocumentStoreProvider interface {
	// Collection returns a handle once the named collection is known to exist.
	Collection(ctx context.Context, name string) (adapter.DocumentStore, error)

	// ReportFailure tells the provider an operation on a handle failed.
	ReportFailure(err error)

	// Available reports whether the remote store can currently be used.
	Available(ctx context.Context) bool
}
