// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the portal backend: account
// registration, credential checks, the session lifecycle, and the
// application information reported by the diagnostic endpoints.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/health-portal/internal/store"
	"github.com/MKhiriev/health-portal/models"
)

// AuthService registers accounts and checks credentials.
type AuthService interface {
	// RegisterUser validates reg, hashes the password and persists the new
	// account. The returned user carries its store-assigned id and no
	// password hash.
	RegisterUser(ctx context.Context, reg models.Registration) (models.User, error)

	// Login verifies credentials and issues a new session for the account.
	Login(ctx context.Context, credentials models.Credentials) (models.Authenticated, error)
}

// SessionService issues, validates and revokes server-side sessions
// referenced by signed tokens.
type SessionService interface {
	Issue(ctx context.Context, user models.User) (models.SessionToken, error)

	// Validate returns the live session token refers to. Any problem with the
	// token or the session yields false; it never fails loudly.
	Validate(ctx context.Context, token string) (models.Session, bool)

	// Revoke destroys the session token refers to. It is idempotent and
	// accepts expired tokens.
	Revoke(ctx context.Context, token string)
}

// AppInfoService reports the build version and the runtime health of the
// process.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.Health
	Debug(ctx context.Context) models.DebugInfo
}

// StoreStateReporter exposes the cached connection state of the remote
// document store without triggering a connection attempt.
type StoreStateReporter interface {
	State() store.ConnectionState
}
