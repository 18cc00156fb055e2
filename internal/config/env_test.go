// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"STORAGE_DATA_DIR": "/var/lib/carbon",

		"BRIDGE_ENABLED":         "true",
		"BRIDGE_ENDPOINT":        "https://replica.example.com",
		"BRIDGE_REQUEST_TIMEOUT": "30s",

		"UPDATES_MANIFEST_URL": "https://releases.example.com/latest.json",

		"WORKERS_SYNC_INTERVAL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/lib/carbon", cfg.Storage.DataDir)

	assert.True(t, cfg.Bridge.Enabled)
	assert.Equal(t, "https://replica.example.com", cfg.Bridge.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Bridge.RequestTimeout)

	assert.Equal(t, "https://releases.example.com/latest.json", cfg.Updates.ManifestURL)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"BRIDGE_ENDPOINT":  "https://replica.example.com",
		"STORAGE_DATA_DIR": "/tmp/carbon",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://replica.example.com", cfg.Bridge.Endpoint)
	assert.False(t, cfg.Bridge.Enabled)
	assert.Zero(t, cfg.Bridge.RequestTimeout)

	assert.Equal(t, "/tmp/carbon", cfg.Storage.DataDir)
	assert.Empty(t, cfg.App.Version)
	assert.Empty(t, cfg.Updates.ManifestURL)
	assert.Zero(t, cfg.Workers.SyncInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"BRIDGE_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
