// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Missing document store credentials are not a validation error: the portal
// then runs against the fallback store only.
func (cfg *StructuredConfig) validate() error {
	if cfg.SecretKey == "" {
		return fmt.Errorf("%w: empty secret key", ErrInvalidAppConfigs)
	}

	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d", ErrInvalidAuthConfigs, cfg.Auth.BcryptCost)
	}
	if cfg.Auth.SessionTTL <= 0 || cfg.Auth.SessionIssuer == "" || cfg.Auth.CookieName == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Cloudant.ConnectAttempts < 1 || cfg.Cloudant.RetryDelay < 0 ||
		cfg.Cloudant.CallTimeout <= 0 || cfg.Cloudant.ReconnectCooldown < 0 {
		return ErrInvalidCloudantConfigs
	}

	switch cfg.Fallback.Driver {
	case FallbackDriverMemory:
	case FallbackDriverSQLite:
		if cfg.Fallback.DSN == "" {
			return fmt.Errorf("%w: sqlite driver needs a DSN", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown fallback driver %q", ErrInvalidStorageConfigs, cfg.Fallback.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}

// UsesInsecureSecretKey reports whether session tokens are signed with the
// publicly known default key.
func (cfg *StructuredConfig) UsesInsecureSecretKey() bool {
	return cfg.SecretKey == InsecureDefaultSecretKey
}
