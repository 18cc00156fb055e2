// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the sync engine and its supporting services: the
// coarse status tracker, the background sync job and the release update
// checker. The engine owns all conflict handling; callers submit one logical
// request at a time and receive exactly one typed outcome per request.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/carbon/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncEngine orchestrates synchronisation between the local workspace
// document and the single remote replica. Every operation blocks until the
// provider answers and returns a well-formed result; none of them panic and
// none retry internally (the push conflict fallback in Push is the single
// exception, and it is part of the operation's contract).
//
// When the sync capability is absent every operation answers negatively with
// the fixed unavailability message and touches neither the document nor the
// replica.
type SyncEngine interface {
	// FullSync submits the local document for a provider-side watermark
	// comparison. When the provider's verdict says the replica is newer, the
	// engine decodes the remote record, merges it into the local document
	// (preserving local-only fields) and persists it; the outcome then
	// carries the merged snapshot. The engine never re-implements the
	// watermark comparison.
	FullSync(ctx context.Context, local models.AppData) models.SyncOutcome

	// Push uploads the local document. On a compare-and-swap conflict the
	// engine performs exactly one fallback Pull and returns the pull's
	// outcome in place of the push's; the caller observes a single atomic
	// operation. Any other failure is returned verbatim with zero
	// follow-up calls.
	Push(ctx context.Context, local models.AppData) models.SyncOutcome

	// Pull fetches the replica unconditionally. An empty replica is a
	// success with nothing to update; otherwise the remote record is merged
	// and persisted as in FullSync.
	Pull(ctx context.Context) models.SyncOutcome

	// Status reports the coarse sync state: the tracked result of the last
	// attempt, or the provider's own view when no attempt ran yet.
	Status(ctx context.Context) models.SyncStatusResult

	// AccountStatus queries the provider account availability on demand.
	AccountStatus(ctx context.Context) models.AccountStatusResult

	// CheckAccount reports whether a usable provider account is present.
	CheckAccount(ctx context.Context) bool

	// Init bootstraps the provider and registers change subscriptions.
	// Subscription failure is logged but not fatal.
	Init(ctx context.Context) models.InitSyncResponse

	// DeleteRemoteData wipes the replica record. Local state is untouched.
	DeleteRemoteData(ctx context.Context) bool
}

// StatusTracker holds the engine-owned coarse sync status. It is an owned
// handle, not a package global; the state resets with the process.
type StatusTracker interface {
	// Set records the status of the attempt that just finished (or started).
	Set(status models.SyncStatus)

	// Current returns the last recorded status, SyncIdle before any attempt.
	Current() models.SyncStatus
}

// SyncJob is a background worker that periodically runs a full sync while
// the user keeps sync enabled in the document.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// UpdateService checks a published release manifest and fetches release
// assets. It never triggers installation itself; the downloaded asset is
// handed off to the platform installer.
type UpdateService interface {
	// CheckForUpdates fetches the release manifest and compares its version
	// against the running build.
	CheckForUpdates(ctx context.Context) (models.UpdateInfo, error)

	// InstallUpdate downloads the newest release asset into the data
	// directory and reports where it was placed. Failures travel inside the
	// response.
	InstallUpdate(ctx context.Context) models.InstallUpdateResponse
}
