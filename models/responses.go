package models

import "time"

// DatabaseState is the connectivity of the remote document store as reported
// by the health endpoint.
type DatabaseState string

const (
	DatabaseConnected    DatabaseState = "connected"
	DatabaseDisconnected DatabaseState = "disconnected"
)

// HealthStatusHealthy is the only status the process reports while it is able
// to answer requests; store connectivity is reported separately.
const HealthStatusHealthy = "healthy"

// Health is the body of GET /api/health.
type Health struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Database  DatabaseState `json:"database"`
}

// DebugInfo is the body of GET /api/debug. It reveals only whether secrets are
// configured, never their values.
type DebugInfo struct {
	DatabaseConnected       bool            `json:"database_connected"`
	EnvironmentVariablesSet map[string]bool `json:"environment_variables_set"`
	CurrentConfig           DebugConfig     `json:"current_config"`
}

// DebugConfig summarises the effective configuration for [DebugInfo].
type DebugConfig struct {
	SecretKeyLength    int    `json:"secret_key_length"`
	CloudantConfigured bool   `json:"cloudant_configured"`
	FallbackDriver     string `json:"fallback_driver"`
}

// RegisterResponse is the body of a successful POST /api/register.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginResponse is the body of a successful POST /api/login.
type LoginResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	User    map[string]any `json:"user"`
}

// CheckAuthResponse is the body of GET /api/check-auth.
type CheckAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          Role   `json:"role,omitempty"`
	Username      string `json:"username,omitempty"`
}

// MessageResponse is a generic success body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
