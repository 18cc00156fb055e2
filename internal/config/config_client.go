package config

import (
	"fmt"
	"time"
)

// Built-in fallbacks applied when a source provides no value.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string of the running client.
	Version string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DataDir is the per-user application-data directory override; empty
	// means "resolve the platform default at runtime".
	DataDir string
}

// ClientBridge holds settings for the remote sync capability.
type ClientBridge struct {
	// Enabled switches the capability on; false means every sync command
	// answers with the unavailability sentinel.
	Enabled bool
	// Endpoint is the base URL of the remote replica service.
	Endpoint string
	// RequestTimeout is the per-call timeout for blocking bridge operations.
	RequestTimeout time.Duration
}

// ClientUpdates holds release update checker settings.
type ClientUpdates struct {
	// ManifestURL is the published release manifest location.
	ManifestURL string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains local persistence settings.
	Storage ClientStorage
	// Bridge contains remote sync capability settings.
	Bridge ClientBridge
	// Updates contains release checker settings.
	Updates ClientUpdates
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies built-in defaults for timeouts and
// intervals, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			DataDir: cfg.Storage.DataDir,
		},
		Bridge: ClientBridge{
			Enabled:        cfg.Bridge.Enabled,
			Endpoint:       cfg.Bridge.Endpoint,
			RequestTimeout: cfg.Bridge.RequestTimeout,
		},
		Updates: ClientUpdates{
			ManifestURL: cfg.Updates.ManifestURL,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	if clientCfg.Bridge.RequestTimeout == 0 {
		clientCfg.Bridge.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}

	return clientCfg, clientCfg.validate()
}
