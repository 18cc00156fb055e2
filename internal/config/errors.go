package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBridgeConfigs indicates invalid remote sync settings
	// (for example, sync enabled without an endpoint).
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
