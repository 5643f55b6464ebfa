package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty secret key or an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates invalid hashing or session settings
	// (for example, a bcrypt cost out of range or a zero session TTL).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidCloudantConfigs indicates invalid document store connection
	// settings (for example, zero connect attempts).
	ErrInvalidCloudantConfigs = errors.New("invalid cloudant configuration")
	// ErrInvalidStorageConfigs indicates invalid fallback store settings
	// (for example, an unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, a zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
