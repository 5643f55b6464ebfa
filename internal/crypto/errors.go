// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedHash is returned by [PasswordHasher.Verify] when the stored
	// hash is not a structurally valid bcrypt string (wrong prefix, unknown
	// version, bad cost, or truncated).
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrInvalidCost is returned by [NewBcryptHasher] for a cost outside the
	// range accepted by bcrypt.
	ErrInvalidCost = errors.New("invalid bcrypt cost")
)
