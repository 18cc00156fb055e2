// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the carbon
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string
	// reported to the update checker.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence layer: the
	// workspace document and the sync history database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Bridge holds configuration for the remote sync capability.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Updates holds configuration for the release update checker.
	Updates Updates `envPrefix:"UPDATES_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Compared against the release manifest by the update
	// checker and shown in the UI shell.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence layer.
type Storage struct {
	// DataDir overrides the per-user application-data directory that holds
	// the workspace document and the sync history database. When empty the
	// platform default is resolved at runtime.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Bridge holds settings for the remote sync capability. When Enabled is
// false or Endpoint is empty the capability is treated as absent and every
// sync command answers with the fixed unavailability sentinel.
type Bridge struct {
	// Enabled switches the sync capability on for this build/platform.
	// Env: BRIDGE_ENABLED
	Enabled bool `env:"ENABLED"`

	// Endpoint is the base URL of the remote replica service.
	// Env: BRIDGE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout is the maximum duration allowed for a single blocking
	// bridge call (e.g. "30s", "1m").
	// Env: BRIDGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Updates holds settings for the release update checker.
type Updates struct {
	// ManifestURL is the location of the published release manifest.
	// Empty disables update checking.
	// Env: UPDATES_MANIFEST_URL
	ManifestURL string `env:"MANIFEST_URL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the background sync job runs a full
	// sync. Zero falls back to the built-in default.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
