// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// defaultHTTPAddress is used when neither SERVER_ADDRESS nor PORT is set.
const defaultHTTPAddress = ":5000"

// InsecureDefaultSecretKey signs session tokens when SECRET_KEY is not set.
// It is public knowledge; startup logs a warning whenever it is in use.
const InsecureDefaultSecretKey = "fallback-secret-key-2024"

// Fallback store drivers.
const (
	FallbackDriverMemory = "memory"
	FallbackDriverSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container of the portal
// backend. It aggregates all sub-configurations and is populated by merging
// built-in defaults, an optional JSON file, environment variables, and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Auth holds credential hashing and session settings.
	Auth Auth `envPrefix:"AUTH_"`

	// SecretKey signs session tokens. Must be kept confidential.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Cloudant holds the remote document store connection settings.
	Cloudant Cloudant `envPrefix:"CLOUDANT_"`

	// Fallback holds the process-local store used while the remote store is
	// unavailable.
	Fallback Fallback `envPrefix:"FALLBACK_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// LogLevel is the minimum zerolog level written to the output
	// (e.g. "debug", "info", "warn").
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Port is the plain port number used when SERVER_ADDRESS is not set,
	// kept for platforms that inject PORT.
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DebugEndpoint enables GET /api/debug.
	// Env: APP_DEBUG_ENDPOINT
	DebugEndpoint bool `env:"DEBUG_ENDPOINT"`
}

// Auth holds credential hashing and session lifecycle settings.
type Auth struct {
	// BcryptCost is the bcrypt work factor used when hashing passwords.
	// Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// SessionTTL is how long a session stays valid after login.
	// Env: AUTH_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// SessionIssuer is the "iss" claim of every session token.
	// Env: AUTH_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// CookieName is the name of the session cookie.
	// Env: AUTH_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// CookieSecure sets the Secure attribute on the session cookie.
	// Env: AUTH_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`
}

// Cloudant holds connection settings for the remote document store.
type Cloudant struct {
	// APIKey is the IAM API key exchanged for bearer tokens.
	// Env: CLOUDANT_APIKEY
	APIKey string `env:"APIKEY"`

	// URL is the service endpoint (e.g. "https://<account>.cloudantnosqldb.appdomain.cloud").
	// Env: CLOUDANT_URL
	URL string `env:"URL"`

	// IAMURL is the token endpoint used for the API key exchange.
	// Env: CLOUDANT_IAM_URL
	IAMURL string `env:"IAM_URL"`

	// ConnectAttempts is how many liveness checks are made before the store
	// is declared unavailable.
	// Env: CLOUDANT_CONNECT_ATTEMPTS
	ConnectAttempts int `env:"CONNECT_ATTEMPTS"`

	// RetryDelay is the pause between connection attempts.
	// Env: CLOUDANT_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// CallTimeout bounds every single remote call.
	// Env: CLOUDANT_CALL_TIMEOUT
	CallTimeout time.Duration `env:"CALL_TIMEOUT"`

	// ReconnectCooldown is the minimum time between a failed connection and
	// the next attempt. Zero retries on every access.
	// Env: CLOUDANT_RECONNECT_COOLDOWN
	ReconnectCooldown time.Duration `env:"RECONNECT_COOLDOWN"`

	// Collections lists the databases ensured at startup.
	// Env: CLOUDANT_COLLECTIONS (comma separated)
	Collections []string `env:"COLLECTIONS" envSeparator:","`
}

// Configured reports whether both values required to reach the remote store
// are present.
func (c Cloudant) Configured() bool {
	return c.APIKey != "" && c.URL != ""
}

// Fallback holds the settings of the process-local store.
type Fallback struct {
	// Driver selects the implementation: "memory" or "sqlite".
	// Env: FALLBACK_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite data source name used by the "sqlite" driver.
	// Env: FALLBACK_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins allowed by CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// defaults returns the built-in configuration every other source is merged on.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Auth: Auth{
			BcryptCost:    12,
			SessionTTL:    time.Hour,
			SessionIssuer: "health-portal",
			CookieName:    "session",
		},
		SecretKey: InsecureDefaultSecretKey,
		Cloudant: Cloudant{
			IAMURL:            "https://iam.cloud.ibm.com/identity/token",
			ConnectAttempts:   3,
			RetryDelay:        2 * time.Second,
			CallTimeout:       10 * time.Second,
			ReconnectCooldown: 30 * time.Second,
			Collections:       []string{"users", "patients", "predictions"},
		},
		Fallback: Fallback{
			Driver: FallbackDriverMemory,
			DSN:    "file:fallback?mode=memory&cache=shared",
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		LogLevel: "info",
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
