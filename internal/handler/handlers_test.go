package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/mock"
	"github.com/MKhiriev/carbon/models"
)

type handlerMocks struct {
	snapshot *mock.MockSnapshotStorage
	history  *mock.MockSyncHistoryRepository
	engine   *mock.MockSyncEngine
	updates  *mock.MockUpdateService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		snapshot: mock.NewMockSnapshotStorage(ctrl),
		history:  mock.NewMockSyncHistoryRepository(ctrl),
		engine:   mock.NewMockSyncEngine(ctrl),
		updates:  mock.NewMockUpdateService(ctrl),
	}
	h := &Handler{
		snapshot: m.snapshot,
		history:  m.history,
		engine:   m.engine,
		updates:  m.updates,
		logger:   logger.Nop(),
	}
	return h, m
}

func TestReadData(t *testing.T) {
	h, m := newTestHandler(t)
	doc := models.DefaultAppData()

	m.snapshot.EXPECT().Load(gomock.Any()).Return(doc)

	resp := h.ReadData(context.Background())

	assert.Equal(t, doc.Theme, resp.Data.Theme)
	require.Len(t, resp.Data.Boards, 1)
}

func TestWriteData_StampsWatermarkBeforeSave(t *testing.T) {
	h, m := newTestHandler(t)
	doc := models.DefaultAppData()
	doc.LastModified = "2026-03-01T10:00:00Z"

	var saved models.AppData
	m.snapshot.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data models.AppData) error {
			saved = data
			return nil
		})

	resp, err := h.WriteData(context.Background(), doc)

	require.NoError(t, err)
	assert.True(t, resp.Written)
	assert.NotEqual(t, "2026-03-01T10:00:00Z", resp.LastModified)
	assert.Equal(t, resp.LastModified, saved.LastModified)
}

func TestWriteData_SaveFailurePropagates(t *testing.T) {
	h, m := newTestHandler(t)
	saveErr := errors.New("disk full")

	m.snapshot.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saveErr)

	_, err := h.WriteData(context.Background(), models.DefaultAppData())

	require.Error(t, err)
	assert.Equal(t, saveErr, err)
}

func TestGetDataPath(t *testing.T) {
	h, m := newTestHandler(t)

	m.snapshot.EXPECT().Path().Return("/home/user/.config/carbon/boards.json")

	resp := h.GetDataPath(context.Background())

	assert.Equal(t, "/home/user/.config/carbon/boards.json", resp.Path)
}

func TestSyncCommands_DelegateToEngine(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()
	doc := models.DefaultAppData()
	outcome := models.SyncOutcome{Success: true}

	m.snapshot.EXPECT().Load(gomock.Any()).Return(doc).Times(2)
	m.engine.EXPECT().FullSync(gomock.Any(), gomock.Any()).Return(outcome)
	m.engine.EXPECT().Push(gomock.Any(), gomock.Any()).Return(outcome)
	m.engine.EXPECT().Pull(gomock.Any()).Return(outcome)

	assert.Equal(t, outcome, h.FullSync(ctx))
	assert.Equal(t, outcome, h.Push(ctx))
	assert.Equal(t, outcome, h.Pull(ctx))
}

func TestStatusCommands(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.engine.EXPECT().Status(gomock.Any()).Return(models.SyncStatusResult{Status: models.SyncSynced})
	m.engine.EXPECT().AccountStatus(gomock.Any()).Return(models.AccountStatusResult{Available: true})
	m.engine.EXPECT().CheckAccount(gomock.Any()).Return(true)

	assert.Equal(t, models.SyncSynced, h.GetSyncStatus(ctx).Status)
	assert.True(t, h.GetAccountStatus(ctx).Available)
	assert.True(t, h.CheckAccount(ctx).Available)
}

func TestInitAndDelete(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.engine.EXPECT().Init(gomock.Any()).Return(models.InitSyncResponse{Initialized: true, Subscriptions: true})
	m.engine.EXPECT().DeleteRemoteData(gomock.Any()).Return(true)

	init := h.InitSync(ctx)
	assert.True(t, init.Initialized)
	assert.True(t, init.Subscriptions)
	assert.True(t, h.DeleteRemoteData(ctx).Deleted)
}

func TestUpdateCommands(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()
	version := "1.3.0"
	path := "/tmp/carbon-1.3.0.bin"

	m.updates.EXPECT().
		CheckForUpdates(gomock.Any()).
		Return(models.UpdateInfo{Available: true, Version: &version}, nil)
	m.updates.EXPECT().
		InstallUpdate(gomock.Any()).
		Return(models.InstallUpdateResponse{Installed: true, Path: &path})

	info, err := h.CheckForUpdates(ctx)
	require.NoError(t, err)
	assert.True(t, info.Available)

	resp := h.InstallUpdate(ctx)
	assert.True(t, resp.Installed)
}

func TestRecentActivity(t *testing.T) {
	h, m := newTestHandler(t)

	m.history.EXPECT().
		RecentAttempts(gomock.Any(), uint64(10)).
		Return([]models.SyncAttempt{{ID: 1, Op: models.SyncOpPush, Success: true}}, nil)

	attempts := h.RecentActivity(context.Background(), 10)

	require.Len(t, attempts, 1)
	assert.Equal(t, models.SyncOpPush, attempts[0].Op)
}

func TestRecentActivity_HistoryErrorYieldsNil(t *testing.T) {
	h, m := newTestHandler(t)

	m.history.EXPECT().
		RecentAttempts(gomock.Any(), uint64(10)).
		Return(nil, errors.New("database is locked"))

	assert.Nil(t, h.RecentActivity(context.Background(), 10))
}
