// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bridge provides the remote sync capability of the carbon client.
//
// The primary abstraction is [Bridge], which decouples the sync engine from
// the underlying sync provider. The package ships an HTTP/REST implementation
// ([NewHTTPBridge]) talking to a replica endpoint with compare-and-swap
// semantics on the document watermark.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNoRemoteData] for 404).
//
// The capability may be absent at runtime: [Resolve] inspects the
// configuration and returns no bridge when sync is disabled or unconfigured.
// Callers answer every sync request with [UnavailableMsg] in that case.
package bridge

import (
	"context"

	"github.com/MKhiriev/carbon/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_mock.go -package=mock

// Bridge defines provider-agnostic communication with the single remote
// replica. All operations block until the provider answers; the engine runs
// them off the UI thread. Implementations are responsible for serialisation
// and for mapping transport-level errors to the sentinel values defined in
// this package.
type Bridge interface {
	// Init performs provider bootstrap (schema/zone creation or the
	// provider's equivalent). Safe to call more than once.
	Init(ctx context.Context) error

	// CheckAccount reports whether a usable provider account is present.
	CheckAccount(ctx context.Context) bool

	// AccountStatus queries the detailed account availability. The result is
	// computed per call and never cached.
	AccountStatus(ctx context.Context) models.AccountStatusResult

	// Push uploads the serialized projection with its watermark. Returns
	// [ErrConflict] (wrapped) when the replica holds newer data.
	Push(ctx context.Context, payload string, lastModified string) error

	// Pull fetches the replica record unconditionally. Returns
	// [ErrNoRemoteData] (wrapped) when the replica holds nothing yet.
	Pull(ctx context.Context) (models.RemoteRecord, error)

	// FullSync uploads the serialized projection and lets the provider
	// compare watermarks. The returned record carries the provider's verdict
	// in ShouldUpdateLocal; callers honor it without re-comparing.
	FullSync(ctx context.Context, payload string, lastModified string) (models.RemoteRecord, error)

	// Status reports the provider-side view of the sync state.
	Status(ctx context.Context) models.SyncStatusResult

	// SetupSubscriptions registers for remote change notifications.
	// Best-effort: a false return is not fatal.
	SetupSubscriptions(ctx context.Context) bool

	// DeleteData wipes the replica record. Never touches local state.
	DeleteData(ctx context.Context) bool
}
