// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/health-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegistration() models.Registration {
	return models.Registration{Username: "asha1", Password: "p@ss", Role: models.RoleAsha}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("Registration value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRegistration()))
	})

	t.Run("Registration pointer", func(t *testing.T) {
		reg := validRegistration()
		require.NoError(t, v.Validate(ctx, &reg))
	})

	t.Run("Credentials value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Credentials{Username: "u", Password: "p"}))
	})

	t.Run("Credentials pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Credentials{Username: "u", Password: "p"}))
	})
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

func TestValidate_Registration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Registration)
		wantErr error
	}{
		{"complete", func(*models.Registration) {}, nil},
		{"no username", func(r *models.Registration) { r.Username = "" }, ErrEmptyUsername},
		{"no password", func(r *models.Registration) { r.Password = "" }, ErrEmptyPassword},
		{"no role", func(r *models.Registration) { r.Role = "" }, ErrEmptyRole},
		{"unknown role is fine", func(r *models.Registration) { r.Role = "nurse" }, nil},
	}

	v := NewAccountValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)

			err := v.Validate(context.Background(), reg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Registration_ScopedFields(t *testing.T) {
	v := NewAccountValidator()
	reg := models.Registration{Username: "asha1"}

	assert.NoError(t, v.Validate(context.Background(), reg, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), reg, FieldUsername, FieldRole), ErrEmptyRole)
	assert.ErrorIs(t, v.Validate(context.Background(), reg, "district"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "p"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "u"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "u", Password: "p"}, FieldRole), ErrUnknownField)

	// whitespace is a real value; credentials are compared verbatim
	assert.NoError(t, v.Validate(ctx, models.Credentials{Username: " ", Password: " "}))
}
