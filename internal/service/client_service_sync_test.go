// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/carbon/internal/bridge"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/mock"
	"github.com/MKhiriev/carbon/models"
)

type engineMocks struct {
	snapshot *mock.MockSnapshotStorage
	history  *mock.MockSyncHistoryRepository
	bridge   *mock.MockBridge
}

func newTestEngine(t *testing.T, present bool) (SyncEngine, engineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := engineMocks{
		snapshot: mock.NewMockSnapshotStorage(ctrl),
		history:  mock.NewMockSyncHistoryRepository(ctrl),
		bridge:   mock.NewMockBridge(ctrl),
	}

	var b bridge.Bridge
	if present {
		b = m.bridge
	}
	return NewSyncEngine(m.snapshot, m.history, b, present, logger.Nop()), m
}

func localDoc(t *testing.T) models.AppData {
	t.Helper()
	doc := models.DefaultAppData()
	doc.ActiveView = "bookmarks"
	doc.SyncEnabled = true
	doc.LastModified = "2026-03-01T10:00:00Z"
	return doc
}

func remotePayload(t *testing.T, theme, lastModified string) string {
	t.Helper()
	doc := models.DefaultAppData()
	doc.Theme = theme
	doc.LastModified = lastModified
	raw, err := json.Marshal(doc.SyncPayload())
	require.NoError(t, err)
	return string(raw)
}

// ── capability absent ───────────────────────────────────────────────────────

func TestEngine_CapabilityAbsent_AllOpsNegative(t *testing.T) {
	engine, _ := newTestEngine(t, false)
	ctx := context.Background()
	local := localDoc(t)

	for name, outcome := range map[string]models.SyncOutcome{
		"fullSync": engine.FullSync(ctx, local),
		"push":     engine.Push(ctx, local),
		"pull":     engine.Pull(ctx),
	} {
		assert.False(t, outcome.Success, name)
		assert.False(t, outcome.ShouldUpdateLocal, name)
		require.NotNil(t, outcome.Error, name)
		assert.Equal(t, bridge.UnavailableMsg, *outcome.Error, name)
	}

	assert.Equal(t, models.SyncOffline, engine.Status(ctx).Status)
	assert.False(t, engine.CheckAccount(ctx))
	assert.False(t, engine.DeleteRemoteData(ctx))
	assert.Equal(t, models.InitSyncResponse{}, engine.Init(ctx))

	account := engine.AccountStatus(ctx)
	assert.False(t, account.Available)
	assert.Equal(t, models.AccountCouldNotDetermine, account.Status)
	require.NotNil(t, account.Error)
	assert.Equal(t, bridge.UnavailableMsg, *account.Error)
	// zero expectations registered on the mocks: gomock verifies that the
	// snapshot, history and bridge were never touched
}

// ── FullSync ────────────────────────────────────────────────────────────────

func TestEngine_FullSync_LocalIsCurrent(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)

	m.bridge.EXPECT().
		FullSync(gomock.Any(), gomock.Any(), local.LastModified).
		Return(models.RemoteRecord{LastModified: local.LastModified, ShouldUpdateLocal: false}, nil)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.FullSync(context.Background(), local)

	assert.True(t, outcome.Success)
	assert.False(t, outcome.ShouldUpdateLocal)
	assert.Nil(t, outcome.Error)
	assert.Nil(t, outcome.RemoteSnapshot)
	// no snapshot.Save expectation: the document and the file stay untouched
	assert.Equal(t, models.SyncSynced, engine.Status(context.Background()).Status)
}

func TestEngine_FullSync_RemoteNewer_PersistsMergedDocument(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)
	remoteWatermark := "2026-03-02T09:00:00Z"

	m.bridge.EXPECT().
		FullSync(gomock.Any(), gomock.Any(), local.LastModified).
		Return(models.RemoteRecord{
			Payload:           remotePayload(t, "light", remoteWatermark),
			LastModified:      remoteWatermark,
			ShouldUpdateLocal: true,
		}, nil)

	var saved models.AppData
	m.snapshot.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data models.AppData) error {
			saved = data
			return nil
		})
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.FullSync(context.Background(), local)

	require.True(t, outcome.Success)
	assert.True(t, outcome.ShouldUpdateLocal)
	require.NotNil(t, outcome.RemoteSnapshot)
	require.NotNil(t, outcome.RemoteLastModified)
	assert.Equal(t, remoteWatermark, *outcome.RemoteLastModified)

	// remote fields win, local-only view survives
	assert.Equal(t, "light", saved.Theme)
	assert.Equal(t, "bookmarks", saved.ActiveView)
	assert.Equal(t, remoteWatermark, saved.LastModified)
}

func TestEngine_FullSync_BridgeError_Verbatim(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)
	callErr := errors.New("zone busy, try later")

	m.bridge.EXPECT().
		FullSync(gomock.Any(), gomock.Any(), local.LastModified).
		Return(models.RemoteRecord{}, callErr)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.FullSync(context.Background(), local)

	assert.False(t, outcome.Success)
	require.NotNil(t, outcome.Error)
	assert.Equal(t, callErr.Error(), *outcome.Error)
	assert.Equal(t, models.SyncError, engine.Status(context.Background()).Status)
}

func TestEngine_FullSync_ProviderUnreachable_ReadsOffline(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)

	m.bridge.EXPECT().
		FullSync(gomock.Any(), gomock.Any(), local.LastModified).
		Return(models.RemoteRecord{}, bridge.ErrUnavailable)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.FullSync(context.Background(), local)

	assert.False(t, outcome.Success)
	assert.Equal(t, models.SyncOffline, engine.Status(context.Background()).Status)
}

func TestEngine_FullSync_SaveFailure_Propagates(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)
	saveErr := errors.New("error writing workspace document: disk full")

	m.bridge.EXPECT().
		FullSync(gomock.Any(), gomock.Any(), local.LastModified).
		Return(models.RemoteRecord{
			Payload:           remotePayload(t, "light", "2026-03-02T09:00:00Z"),
			LastModified:      "2026-03-02T09:00:00Z",
			ShouldUpdateLocal: true,
		}, nil)
	m.snapshot.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(saveErr)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.FullSync(context.Background(), local)

	assert.False(t, outcome.Success)
	require.NotNil(t, outcome.Error)
	assert.Equal(t, saveErr.Error(), *outcome.Error)
}

// ── Push ────────────────────────────────────────────────────────────────────

func TestEngine_Push_Success(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)

	m.bridge.EXPECT().
		Push(gomock.Any(), gomock.Any(), local.LastModified).
		Return(nil)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.Push(context.Background(), local)

	assert.True(t, outcome.Success)
	assert.False(t, outcome.ShouldUpdateLocal)
	assert.Nil(t, outcome.Error)
}

func TestEngine_Push_Conflict_ExactlyOnePullOutcomeReturned(t *testing.T) {
	// T1/T2 race: our push loses, the fallback pull must surface T2's data
	engine, m := newTestEngine(t, true)
	local := localDoc(t)
	remoteWatermark := "2026-03-02T09:00:00Z"

	m.bridge.EXPECT().
		Push(gomock.Any(), gomock.Any(), local.LastModified).
		Return(bridge.ErrConflict)
	m.snapshot.EXPECT().
		Load(gomock.Any()).
		Return(local)
	m.bridge.EXPECT().
		Pull(gomock.Any()).
		Return(models.RemoteRecord{
			Payload:      remotePayload(t, "light", remoteWatermark),
			LastModified: remoteWatermark,
		}, nil).
		Times(1)
	m.snapshot.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil).
		Times(2) // the conflicted push and the fallback pull

	outcome := engine.Push(context.Background(), local)

	require.True(t, outcome.Success)
	assert.True(t, outcome.ShouldUpdateLocal)
	require.NotNil(t, outcome.RemoteSnapshot)
	assert.Equal(t, "light", outcome.RemoteSnapshot.Theme)
	require.NotNil(t, outcome.RemoteLastModified)
	assert.Equal(t, remoteWatermark, *outcome.RemoteLastModified)
	assert.Equal(t, models.SyncSynced, engine.Status(context.Background()).Status)
}

func TestEngine_Push_NonConflictError_NoFollowUps(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)
	callErr := errors.New("request entity too large")

	m.bridge.EXPECT().
		Push(gomock.Any(), gomock.Any(), local.LastModified).
		Return(callErr)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.Push(context.Background(), local)

	// no Pull expectation: any follow-up call would fail the test
	assert.False(t, outcome.Success)
	require.NotNil(t, outcome.Error)
	assert.Equal(t, callErr.Error(), *outcome.Error)
}

// ── Pull ────────────────────────────────────────────────────────────────────

func TestEngine_Pull_RemoteEmpty_SuccessNothingToUpdate(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)

	m.snapshot.EXPECT().Load(gomock.Any()).Return(local)
	m.bridge.EXPECT().Pull(gomock.Any()).Return(models.RemoteRecord{}, bridge.ErrNoRemoteData)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.Pull(context.Background())

	assert.True(t, outcome.Success)
	assert.False(t, outcome.ShouldUpdateLocal)
	assert.Nil(t, outcome.RemoteSnapshot)
}

func TestEngine_Pull_DataPresent_UpdatesLocalStore(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)
	remoteWatermark := "2026-03-02T09:00:00Z"

	m.snapshot.EXPECT().Load(gomock.Any()).Return(local)
	m.bridge.EXPECT().Pull(gomock.Any()).Return(models.RemoteRecord{
		Payload:      remotePayload(t, "light", remoteWatermark),
		LastModified: remoteWatermark,
	}, nil)

	var saved models.AppData
	m.snapshot.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data models.AppData) error {
			saved = data
			return nil
		})
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.Pull(context.Background())

	require.True(t, outcome.Success)
	assert.True(t, outcome.ShouldUpdateLocal)
	assert.Equal(t, "light", saved.Theme)
	assert.Equal(t, "bookmarks", saved.ActiveView)
	assert.Equal(t, remoteWatermark, saved.LastModified)
}

func TestEngine_Pull_UndecodablePayload_Fails(t *testing.T) {
	engine, m := newTestEngine(t, true)

	m.snapshot.EXPECT().Load(gomock.Any()).Return(localDoc(t))
	m.bridge.EXPECT().Pull(gomock.Any()).Return(models.RemoteRecord{
		Payload:      "{broken",
		LastModified: "2026-03-02T09:00:00Z",
	}, nil)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	outcome := engine.Pull(context.Background())

	assert.False(t, outcome.Success)
	require.NotNil(t, outcome.Error)
	assert.Contains(t, *outcome.Error, ErrRemoteDecode.Error())
}

// ── Status / Account / Init / Delete ────────────────────────────────────────

func TestEngine_Status_IdleConsultsProvider(t *testing.T) {
	engine, m := newTestEngine(t, true)

	m.bridge.EXPECT().
		Status(gomock.Any()).
		Return(models.SyncStatusResult{Status: models.SyncSynced})

	result := engine.Status(context.Background())

	assert.Equal(t, models.SyncSynced, result.Status)
}

func TestEngine_AccountStatus_PassThrough(t *testing.T) {
	engine, m := newTestEngine(t, true)
	want := models.AccountStatusResult{Available: true, Status: models.AccountAvailable}

	m.bridge.EXPECT().AccountStatus(gomock.Any()).Return(want)
	m.bridge.EXPECT().CheckAccount(gomock.Any()).Return(true)

	assert.Equal(t, want, engine.AccountStatus(context.Background()))
	assert.True(t, engine.CheckAccount(context.Background()))
}

func TestEngine_Init_SubscriptionFailureNotFatal(t *testing.T) {
	engine, m := newTestEngine(t, true)

	m.bridge.EXPECT().Init(gomock.Any()).Return(nil)
	m.bridge.EXPECT().SetupSubscriptions(gomock.Any()).Return(false)

	resp := engine.Init(context.Background())

	assert.True(t, resp.Initialized)
	assert.False(t, resp.Subscriptions)
}

func TestEngine_Init_BootstrapFailure(t *testing.T) {
	engine, m := newTestEngine(t, true)

	m.bridge.EXPECT().Init(gomock.Any()).Return(errors.New("zone creation failed"))

	assert.Equal(t, models.InitSyncResponse{}, engine.Init(context.Background()))
}

func TestEngine_DeleteRemoteData_PassThrough(t *testing.T) {
	engine, m := newTestEngine(t, true)

	m.bridge.EXPECT().DeleteData(gomock.Any()).Return(true)

	// no snapshot expectations: the local document must stay untouched
	assert.True(t, engine.DeleteRemoteData(context.Background()))
}

func TestEngine_HistoryFailure_DoesNotAffectOutcome(t *testing.T) {
	engine, m := newTestEngine(t, true)
	local := localDoc(t)

	m.bridge.EXPECT().
		Push(gomock.Any(), gomock.Any(), local.LastModified).
		Return(nil)
	m.history.EXPECT().
		RecordAttempt(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("database is locked"))

	outcome := engine.Push(context.Background(), local)

	assert.True(t, outcome.Success)
}
