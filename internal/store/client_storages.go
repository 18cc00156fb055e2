package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
)

const historyDBFileName = "history.db"

// ClientStorages groups all client-side storage backends into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Snapshot is the file-backed storage of the workspace document.
	Snapshot SnapshotStorage

	// SyncHistory is the SQLite-backed repository of past sync attempts.
	SyncHistory SyncHistoryRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Resolves (and creates if missing) the per-user data directory that
//     holds both the workspace document and the history database.
//  2. Opens an SQLite connection to the history database file, creating it
//     if it does not yet exist, and runs pending schema migrations via
//     [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     snapshot storage and sync history repository.
//
// Returns an error if the data directory cannot be created, the database
// connection cannot be established or migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	dataDir, err := ResolveDataDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data directory error: %w", err)
	}

	db, err := NewConnectSQLite(context.Background(), filepath.Join(dataDir, historyDBFileName), logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Snapshot:    NewSnapshotStorage(dataDir, logger),
		SyncHistory: NewSyncHistoryRepository(db, logger),
	}, nil
}
