package validators

import (
	"context"

	"github.com/MKhiriev/health-portal/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the account username.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldRole targets the account role. Any non-empty role is accepted;
	// unknown roles simply carry no attributes.
	FieldRole = "role"
)

// AccountValidator implements [Validator] for registration and login input.
// Both value and pointer forms of each model are accepted.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator and returns it as the
// Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of obj:
//   - models.Registration / *models.Registration (default: username, password, role)
//   - models.Credentials / *models.Credentials (default: username, password)
//
// Returns ErrUnsupportedType for any other type and the first field error
// otherwise.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegistration(_ context.Context, reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if reg.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if reg.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if reg.Role == "" {
				return ErrEmptyRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
