// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptInputLimit is the number of password bytes bcrypt consumes.
const bcryptInputLimit = 72

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the bcrypt work factor (log2 of the key-expansion rounds).
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] using the given bcrypt cost.
// A zero cost selects [bcrypt.DefaultCost].
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prepare(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher]. The comparison is constant-time.
func (h *bcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prepare(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// prepare maps passwords longer than bcrypt's input limit to a fixed-size
// digest so that every byte of the password affects the hash.
func prepare(password string) []byte {
	if len(password) <= bcryptInputLimit {
		return []byte(password)
	}

	sum := sha256.Sum256([]byte(password))
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(encoded, sum[:])

	return encoded
}
