package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/carbon/internal/store"
)

type syncJob struct {
	engine   SyncEngine
	snapshot store.SnapshotStorage

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a [SyncJob] that runs a full sync on a ticker. The job
// is idle until Start is called. Each tick re-reads the document and skips
// the sync while the user has it disabled.
func NewSyncJob(engine SyncEngine, snapshot store.SnapshotStorage) SyncJob {
	return &syncJob{engine: engine, snapshot: snapshot}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a background goroutine that syncs every interval. If interval is
// zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				local := j.snapshot.Load(jobCtx)
				if !local.SyncEnabled {
					continue
				}
				_ = j.engine.FullSync(jobCtx, local)
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
