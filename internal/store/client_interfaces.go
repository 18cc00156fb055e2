// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client-side persistence layer: the workspace
// document on disk and the SQLite-backed sync history.
//
// The workspace document is a single pretty-printed JSON file with stable
// field names; its read path is deliberately failure-proof so the UI shell
// always has something to render. The sync history is diagnostic data only
// and never participates in conflict resolution.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/carbon/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SnapshotStorage persists the full workspace document.
type SnapshotStorage interface {
	// Load reads the persisted workspace document. A missing file yields the
	// seeded default workspace (which is also persisted for next time); an
	// unreadable or unparsable file yields the default workspace without an
	// error and without touching the corrupted file. Load never fails.
	Load(ctx context.Context) models.AppData

	// Save serializes data with pretty formatting and atomically overwrites
	// the document. The caller is responsible for bumping the watermark
	// before saving.
	Save(ctx context.Context, data models.AppData) error

	// Path returns the absolute path of the workspace document.
	Path() string
}

// SyncHistoryRepository records sync attempts in the local history database.
type SyncHistoryRepository interface {
	// RecordAttempt appends one attempt row and returns its assigned ID.
	RecordAttempt(ctx context.Context, attempt models.SyncAttempt) (int64, error)

	// RecentAttempts returns up to limit most recent attempts, newest first.
	RecentAttempts(ctx context.Context, limit uint64) ([]models.SyncAttempt, error)

	// PruneOlderThan deletes attempts whose finish time predates the cutoff
	// and reports how many rows were removed.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
