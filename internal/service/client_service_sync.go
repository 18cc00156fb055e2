// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/carbon/internal/bridge"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/store"
	"github.com/MKhiriev/carbon/models"
)

type syncEngine struct {
	snapshot store.SnapshotStorage
	history  store.SyncHistoryRepository
	bridge   bridge.Bridge
	present  bool
	tracker  StatusTracker

	logger *logger.Logger
}

// NewSyncEngine constructs the [SyncEngine]. b may be nil when present is
// false; the engine then answers every operation with the unavailability
// sentinel and performs no work at all.
func NewSyncEngine(snapshot store.SnapshotStorage, history store.SyncHistoryRepository, b bridge.Bridge, present bool, log *logger.Logger) SyncEngine {
	return &syncEngine{
		snapshot: snapshot,
		history:  history,
		bridge:   b,
		present:  present,
		tracker:  NewStatusTracker(),
		logger:   log,
	}
}

func (s *syncEngine) FullSync(ctx context.Context, local models.AppData) models.SyncOutcome {
	if !s.present {
		return models.FailedOutcome(bridge.UnavailableMsg)
	}

	started := time.Now().UTC()
	s.tracker.Set(models.SyncSyncing)

	payload, err := json.Marshal(local.SyncPayload())
	if err != nil {
		outcome := models.FailedOutcome(fmt.Sprintf("%s: %s", ErrSnapshotEncode, err))
		s.finish(ctx, models.SyncOpFullSync, started, local.LastModified, nil, outcome, false)
		return outcome
	}

	record, err := s.bridge.FullSync(ctx, string(payload), local.LastModified)
	if err != nil {
		outcome := models.FailedOutcome(err.Error())
		s.finishErr(ctx, models.SyncOpFullSync, started, local.LastModified, err, outcome)
		return outcome
	}

	if !record.ShouldUpdateLocal {
		// replica accepted the local document (or already matched it)
		outcome := models.SyncOutcome{Success: true}
		s.finish(ctx, models.SyncOpFullSync, started, local.LastModified, &record.LastModified, outcome, false)
		return outcome
	}

	outcome := s.applyRemote(ctx, local, record)
	s.finish(ctx, models.SyncOpFullSync, started, local.LastModified, &record.LastModified, outcome, false)
	return outcome
}

func (s *syncEngine) Push(ctx context.Context, local models.AppData) models.SyncOutcome {
	if !s.present {
		return models.FailedOutcome(bridge.UnavailableMsg)
	}

	started := time.Now().UTC()
	s.tracker.Set(models.SyncSyncing)

	payload, err := json.Marshal(local.SyncPayload())
	if err != nil {
		outcome := models.FailedOutcome(fmt.Sprintf("%s: %s", ErrSnapshotEncode, err))
		s.finish(ctx, models.SyncOpPush, started, local.LastModified, nil, outcome, false)
		return outcome
	}

	err = s.bridge.Push(ctx, string(payload), local.LastModified)
	if err == nil {
		outcome := models.SyncOutcome{Success: true}
		s.finish(ctx, models.SyncOpPush, started, local.LastModified, nil, outcome, false)
		return outcome
	}

	if !errors.Is(err, bridge.ErrConflict) {
		outcome := models.FailedOutcome(err.Error())
		s.finishErr(ctx, models.SyncOpPush, started, local.LastModified, err, outcome)
		return outcome
	}

	// The replica holds newer data. Exactly one fallback pull; its outcome
	// replaces the push's so the caller sees a single atomic operation.
	s.logger.Debug().Str("func", "syncEngine.Push").Msg("push conflict, falling back to pull")
	s.record(ctx, models.SyncAttempt{
		Op:                models.SyncOpPush,
		StartedAt:         started,
		FinishedAt:        time.Now().UTC(),
		Conflict:          true,
		Error:             errText(err),
		LocalLastModified: watermark(local.LastModified),
	})

	return s.Pull(ctx)
}

func (s *syncEngine) Pull(ctx context.Context) models.SyncOutcome {
	if !s.present {
		return models.FailedOutcome(bridge.UnavailableMsg)
	}

	started := time.Now().UTC()
	s.tracker.Set(models.SyncSyncing)
	local := s.snapshot.Load(ctx)

	record, err := s.bridge.Pull(ctx)
	if errors.Is(err, bridge.ErrNoRemoteData) {
		// nothing stored remotely yet: a successful no-op
		outcome := models.SyncOutcome{Success: true}
		s.finish(ctx, models.SyncOpPull, started, local.LastModified, nil, outcome, false)
		return outcome
	}
	if err != nil {
		outcome := models.FailedOutcome(err.Error())
		s.finishErr(ctx, models.SyncOpPull, started, local.LastModified, err, outcome)
		return outcome
	}

	record.ShouldUpdateLocal = true
	outcome := s.applyRemote(ctx, local, record)
	s.finish(ctx, models.SyncOpPull, started, local.LastModified, &record.LastModified, outcome, false)
	return outcome
}

func (s *syncEngine) Status(ctx context.Context) models.SyncStatusResult {
	if !s.present {
		return models.SyncStatusResult{Status: models.SyncOffline}
	}

	if current := s.tracker.Current(); current != models.SyncIdle {
		return models.SyncStatusResult{Status: current}
	}

	// no attempt ran yet in this process, ask the provider
	return s.bridge.Status(ctx)
}

func (s *syncEngine) AccountStatus(ctx context.Context) models.AccountStatusResult {
	if !s.present {
		msg := bridge.UnavailableMsg
		return models.AccountStatusResult{
			Status: models.AccountCouldNotDetermine,
			Error:  &msg,
		}
	}
	return s.bridge.AccountStatus(ctx)
}

func (s *syncEngine) CheckAccount(ctx context.Context) bool {
	if !s.present {
		return false
	}
	return s.bridge.CheckAccount(ctx)
}

func (s *syncEngine) Init(ctx context.Context) models.InitSyncResponse {
	if !s.present {
		return models.InitSyncResponse{}
	}

	if err := s.bridge.Init(ctx); err != nil {
		s.logger.Err(err).Str("func", "syncEngine.Init").Msg("provider bootstrap failed")
		return models.InitSyncResponse{}
	}

	subs := s.bridge.SetupSubscriptions(ctx)
	if !subs {
		s.logger.Warn().Str("func", "syncEngine.Init").Msg("change subscriptions not registered")
	}

	return models.InitSyncResponse{Initialized: true, Subscriptions: subs}
}

func (s *syncEngine) DeleteRemoteData(ctx context.Context) bool {
	if !s.present {
		return false
	}
	return s.bridge.DeleteData(ctx)
}

// applyRemote decodes the replica record, merges it into the local document
// keeping local-only fields, and persists the result. The returned outcome
// carries the merged snapshot on success.
func (s *syncEngine) applyRemote(ctx context.Context, local models.AppData, record models.RemoteRecord) models.SyncOutcome {
	var remote models.SyncedAppData
	if err := json.Unmarshal([]byte(record.Payload), &remote); err != nil {
		s.logger.Err(err).Str("func", "syncEngine.applyRemote").Msg("replica record does not decode")
		return models.FailedOutcome(fmt.Sprintf("%s: %s", ErrRemoteDecode, err))
	}

	local.ApplyRemote(remote, record.LastModified)

	if err := s.snapshot.Save(ctx, local); err != nil {
		s.logger.Err(err).Str("func", "syncEngine.applyRemote").Msg("failed to persist merged document")
		return models.FailedOutcome(err.Error())
	}

	return models.SyncOutcome{
		Success:            true,
		ShouldUpdateLocal:  true,
		RemoteSnapshot:     &local,
		RemoteLastModified: &record.LastModified,
	}
}

// finish settles the tracker and appends the history row for a completed
// attempt.
func (s *syncEngine) finish(ctx context.Context, op models.SyncOp, started time.Time, localWatermark string, remoteWatermark *string, outcome models.SyncOutcome, conflict bool) {
	if outcome.Success {
		s.tracker.Set(models.SyncSynced)
	} else {
		s.tracker.Set(models.SyncError)
	}

	s.record(ctx, models.SyncAttempt{
		Op:                 op,
		StartedAt:          started,
		FinishedAt:         time.Now().UTC(),
		Success:            outcome.Success,
		Conflict:           conflict,
		Error:              outcome.Error,
		LocalLastModified:  watermark(localWatermark),
		RemoteLastModified: remoteWatermark,
	})
}

// finishErr is finish for bridge call failures: unreachable providers read
// as offline rather than error.
func (s *syncEngine) finishErr(ctx context.Context, op models.SyncOp, started time.Time, localWatermark string, err error, outcome models.SyncOutcome) {
	if errors.Is(err, bridge.ErrUnavailable) {
		s.tracker.Set(models.SyncOffline)
	} else {
		s.tracker.Set(models.SyncError)
	}

	s.record(ctx, models.SyncAttempt{
		Op:                op,
		StartedAt:         started,
		FinishedAt:        time.Now().UTC(),
		Conflict:          errors.Is(err, bridge.ErrConflict),
		Error:             outcome.Error,
		LocalLastModified: watermark(localWatermark),
	})
}

// record appends a history row. History is diagnostic only, so failures are
// logged and swallowed.
func (s *syncEngine) record(ctx context.Context, attempt models.SyncAttempt) {
	if s.history == nil {
		return
	}
	if _, err := s.history.RecordAttempt(ctx, attempt); err != nil {
		s.logger.Err(err).Str("func", "syncEngine.record").Msg("failed to record sync attempt")
	}
}

func watermark(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func errText(err error) *string {
	if err == nil {
		return nil
	}
	msg := err.Error()
	return &msg
}
