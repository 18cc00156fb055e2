package service

import (
	"github.com/MKhiriev/carbon/internal/bridge"
	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/store"
)

// ClientServices groups the client service layer.
type ClientServices struct {
	SyncEngine SyncEngine
	SyncJob    SyncJob
	Updates    UpdateService
}

// NewClientServices wires the service layer: the sync engine over the
// resolved bridge capability (b may be nil when present is false), the
// background sync job and the release update checker. dataDir is the
// resolved per-user data directory.
func NewClientServices(storages *store.ClientStorages, b bridge.Bridge, present bool, cfg *config.ClientConfig, dataDir string, log *logger.Logger) *ClientServices {
	engine := NewSyncEngine(storages.Snapshot, storages.SyncHistory, b, present, log)

	return &ClientServices{
		SyncEngine: engine,
		SyncJob:    NewSyncJob(engine, storages.Snapshot),
		Updates:    NewUpdateService(cfg.Updates, cfg.App.Version, dataDir, log),
	}
}
