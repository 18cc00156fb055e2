// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler exposes the command surface consumed by the UI shell. One
// method per command; each answers with a well-formed response value
// regardless of whether the sync capability is present, so the surface is
// stable across builds and configurations.
package handler

import (
	"context"

	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/service"
	"github.com/MKhiriev/carbon/internal/store"
	"github.com/MKhiriev/carbon/models"
)

// Handler is the command surface. The UI shell holds exactly one instance
// and submits one logical command at a time.
type Handler struct {
	snapshot store.SnapshotStorage
	history  store.SyncHistoryRepository
	engine   service.SyncEngine
	updates  service.UpdateService

	logger *logger.Logger
}

// NewHandler wires the command surface over the storage and service layers.
func NewHandler(storages *store.ClientStorages, services *service.ClientServices, logger *logger.Logger) *Handler {
	logger.Info().Msg("creating new handlers...")

	return &Handler{
		snapshot: storages.Snapshot,
		history:  storages.SyncHistory,
		engine:   services.SyncEngine,
		updates:  services.Updates,
		logger:   logger,
	}
}

// ReadData loads the workspace document. It never fails: a missing or
// corrupt file yields the seeded default workspace.
func (h *Handler) ReadData(ctx context.Context) models.ReadDataResponse {
	return models.ReadDataResponse{Data: h.snapshot.Load(ctx)}
}

// WriteData stamps the watermark on the document and persists it. The
// document owner calls this on every mutation; the stamped watermark is
// returned so the caller can keep its in-memory copy aligned.
func (h *Handler) WriteData(ctx context.Context, data models.AppData) (models.WriteDataResponse, error) {
	data.Touch()

	if err := h.snapshot.Save(ctx, data); err != nil {
		h.logger.Err(err).Str("func", "Handler.WriteData").Msg("failed to persist workspace document")
		return models.WriteDataResponse{}, err
	}

	return models.WriteDataResponse{Written: true, LastModified: data.LastModified}, nil
}

// GetDataPath names the on-disk location of the workspace document.
func (h *Handler) GetDataPath(ctx context.Context) models.DataPathResponse {
	return models.DataPathResponse{Path: h.snapshot.Path()}
}

// CheckForUpdates queries the release manifest.
func (h *Handler) CheckForUpdates(ctx context.Context) (models.UpdateInfo, error) {
	return h.updates.CheckForUpdates(ctx)
}

// InstallUpdate downloads the newest release asset for the platform
// installer. Failures travel inside the response.
func (h *Handler) InstallUpdate(ctx context.Context) models.InstallUpdateResponse {
	return h.updates.InstallUpdate(ctx)
}

// CheckAccount reports whether a usable provider account is present.
func (h *Handler) CheckAccount(ctx context.Context) models.CheckAccountResponse {
	return models.CheckAccountResponse{Available: h.engine.CheckAccount(ctx)}
}

// GetAccountStatus queries the detailed account availability.
func (h *Handler) GetAccountStatus(ctx context.Context) models.AccountStatusResult {
	return h.engine.AccountStatus(ctx)
}

// GetSyncStatus reports the coarse sync state.
func (h *Handler) GetSyncStatus(ctx context.Context) models.SyncStatusResult {
	return h.engine.Status(ctx)
}

// FullSync submits the current document for a provider-side watermark
// comparison and applies the verdict.
func (h *Handler) FullSync(ctx context.Context) models.SyncOutcome {
	return h.engine.FullSync(ctx, h.snapshot.Load(ctx))
}

// Push uploads the current document; a conflict falls back to exactly one
// pull inside the engine.
func (h *Handler) Push(ctx context.Context) models.SyncOutcome {
	return h.engine.Push(ctx, h.snapshot.Load(ctx))
}

// Pull fetches the replica unconditionally.
func (h *Handler) Pull(ctx context.Context) models.SyncOutcome {
	return h.engine.Pull(ctx)
}

// InitSync bootstraps the provider and registers change subscriptions.
func (h *Handler) InitSync(ctx context.Context) models.InitSyncResponse {
	return h.engine.Init(ctx)
}

// DeleteRemoteData wipes the replica record, leaving local data untouched.
func (h *Handler) DeleteRemoteData(ctx context.Context) models.DeleteRemoteDataResponse {
	return models.DeleteRemoteDataResponse{Deleted: h.engine.DeleteRemoteData(ctx)}
}

// RecentActivity returns up to limit most recent sync attempts for the
// status page.
func (h *Handler) RecentActivity(ctx context.Context, limit uint64) []models.SyncAttempt {
	attempts, err := h.history.RecentAttempts(ctx, limit)
	if err != nil {
		h.logger.Err(err).Str("func", "Handler.RecentActivity").Msg("failed to read sync history")
		return nil
	}
	return attempts
}
