package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates invalid session-token settings
	// (for example, missing sign key or non-positive duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidAdapterConfigs indicates invalid outbound adapter settings
	// (for example, missing agent base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown deployment environment).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
