package bridge

import (
	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
)

// Resolve decides at startup whether the sync capability is present. It
// returns the bridge and true when sync is enabled and an endpoint is
// configured; otherwise it returns (nil, false) and callers answer every
// sync command with [UnavailableMsg].
//
// A misconfigured endpoint also resolves to absent rather than failing
// startup: the client must stay usable offline.
func Resolve(cfg config.ClientBridge, log *logger.Logger) (Bridge, bool) {
	if !cfg.Enabled {
		log.Info().Msg("sync capability disabled by configuration")
		return nil, false
	}

	b, err := NewHTTPBridge(cfg, log)
	if err != nil {
		log.Err(err).Msg("sync capability unavailable")
		return nil, false
	}

	log.Info().Str("endpoint", cfg.Endpoint).Msg("sync capability resolved")
	return b, true
}
