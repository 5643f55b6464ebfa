// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/store"
	"github.com/MKhiriev/health-portal/internal/utils"
	"github.com/MKhiriev/health-portal/models"
)

// idGenerator produces unique session identifiers.
type idGenerator interface {
	Generate() string
}

// sessionService pairs an opaque signed token with a server-side session
// record. The token only carries the session id; everything else stays in
// storage and dies with the process.
type sessionService struct {
	storage store.SessionStorage
	ids     idGenerator

	// signKey is the HMAC secret used to sign and verify session tokens.
	signKey string

	// issuer is the "iss" claim embedded in every token. Tokens with another
	// issuer are rejected.
	issuer string

	ttl time.Duration
	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService that signs tokens with
// secretKey and keeps sessions in storage.
func NewSessionService(storage store.SessionStorage, cfg config.Auth, secretKey string, logger *logger.Logger) SessionService {
	return &sessionService{
		storage: storage,
		ids:     utils.NewUUIDGenerator(),
		signKey: secretKey,
		issuer:  cfg.SessionIssuer,
		ttl:     cfg.SessionTTL,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *sessionService) Issue(ctx context.Context, user models.User) (models.SessionToken, error) {
	sessionID := s.ids.Generate()

	token, err := utils.GenerateSessionToken(s.issuer, sessionID, user.ID, s.now(), s.ttl, s.signKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error generating session token: %w", err)
	}

	session := models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: token.ExpiresAt,
	}
	if err = s.storage.Save(ctx, session); err != nil {
		return models.SessionToken{}, fmt.Errorf("error saving session: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("user_id", user.ID).Time("expires_at", token.ExpiresAt).Msg("session issued")

	return token, nil
}

func (s *sessionService) Validate(ctx context.Context, token string) (models.Session, bool) {
	if token == "" {
		return models.Session{}, false
	}

	claims, err := utils.ParseSessionToken(token, s.signKey, s.issuer, false)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Session{}, false
	}

	return s.storage.Get(ctx, claims.SessionID())
}

func (s *sessionService) Revoke(ctx context.Context, token string) {
	if token == "" {
		return
	}

	claims, err := utils.ParseSessionToken(token, s.signKey, s.issuer, true)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("revoke with unusable token")
		return
	}

	s.storage.Delete(ctx, claims.SessionID())
}
