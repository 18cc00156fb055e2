package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-data-dir application-data directory override
//	-bridge-endpoint base URL of the remote replica service
//	-bridge-enabled enable the remote sync capability
//	-request-timeout bridge request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval (e.g., "5m")
//	-update-manifest release manifest URL
//	-version application version string
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var dataDir string
	var bridgeEndpoint string
	var bridgeEnabled bool
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var updateManifest string
	var appVersion string
	var jsonConfigPath string

	flag.StringVar(&dataDir, "data-dir", "", "Application-data directory override")
	flag.StringVar(&bridgeEndpoint, "bridge-endpoint", "", "Remote replica base URL")
	flag.BoolVar(&bridgeEnabled, "bridge-enabled", false, "Enable remote sync")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Bridge request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.StringVar(&updateManifest, "update-manifest", "", "Release manifest URL")
	flag.StringVar(&appVersion, "version", "", "Application version string")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Storage: Storage{
			DataDir: dataDir,
		},
		Bridge: Bridge{
			Enabled:        bridgeEnabled,
			Endpoint:       bridgeEndpoint,
			RequestTimeout: requestTimeout,
		},
		Updates: Updates{
			ManifestURL: updateManifest,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
