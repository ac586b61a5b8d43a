package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidEngineConfigs indicates invalid validation engine settings
	// (for example, a negative recursion depth limit).
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidStorageConfigs indicates invalid contract store settings
	// (for example, an unsupported database driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
