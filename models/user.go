package models

import "time"

// Role identifies the kind of account a user holds. Known roles carry a
// role-specific attribute record; any other value is accepted and stored
// without extra attributes.
type Role string

const (
	RoleAsha      Role = "asha"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
	RoleHospital  Role = "hospital"
)

// UserStatus is the lifecycle status of an account.
type UserStatus string

// StatusActive is assigned to every newly registered account.
const StatusActive UserStatus = "active"

// User represents a registered account of the portal.
// PasswordHash must never leave the trusted boundary: it is excluded from JSON
// and only persisted by the store layer.
type User struct {
	// ID is assigned by the store that persisted the account. For the remote
	// document store it is the document id; for fallback stores it is a
	// sequential integer rendered as a string.
	ID string `json:"id"`

	// Revision is the document revision returned by the remote store.
	Revision string `json:"-"`

	// Username is unique, case-sensitive and immutable after registration.
	Username string `json:"username"`

	// PasswordHash is the salted bcrypt hash of the password.
	PasswordHash string `json:"-"`

	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`

	// Attributes holds the role-specific profile fields.
	Attributes RoleAttributes `json:"-"`
}

// Public returns the client-facing representation of the account: the common
// fields merged with the role attributes. The password hash is never included.
func (u User) Public() map[string]any {
	view := make(map[string]any)
	if u.Attributes != nil {
		for key, value := range u.Attributes.Fields() {
			view[key] = value
		}
	}

	view["id"] = u.ID
	view["username"] = u.Username
	view["role"] = u.Role
	view["status"] = u.Status
	view["created_at"] = u.CreatedAt.UTC().Format(time.RFC3339)

	return view
}

// Registration is the validated input of the account registration flow.
type Registration struct {
	Username   string
	Password   string
	Role       Role
	Attributes RoleAttributes
}

// Credentials is the input of the login flow.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the JSON body of POST /api/register. Role-specific fields
// travel flat in the same object and are decoded separately with
// [NewRoleAttributes].
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Registration converts the request into the service-level input.
func (r RegisterRequest) Registration(attributes RoleAttributes) Registration {
	return Registration{
		Username:   r.Username,
		Password:   r.Password,
		Role:       Role(r.Role),
		Attributes: attributes,
	}
}
