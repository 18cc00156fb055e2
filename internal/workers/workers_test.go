// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/mock"
	"github.com/MKhiriev/carbon/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Stop_ReachesStoppableWorkers(t *testing.T) {
	stoppable := &mockWorker{}
	plain := struct{ Worker }{&mockWorker{}}

	ws := &Workers{workers: []Worker{stoppable, plain}}
	ws.Stop()

	if stoppable.stopCount != 1 {
		t.Errorf("expected stopCount=1, got %d", stoppable.stopCount)
	}
}

func TestNewWorkers_WiresSyncJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockSyncJob(ctrl)

	interval := 42 * time.Second
	job.EXPECT().Start(gomock.Any(), interval)
	job.EXPECT().Stop()

	services := &service.ClientServices{SyncJob: job}
	ws := NewWorkers(config.ClientWorkers{SyncInterval: interval}, services, logger.Nop())

	ws.Run()
	ws.Stop()
}
