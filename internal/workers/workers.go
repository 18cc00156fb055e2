package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the client background workers: currently the periodic
// sync job.
func NewWorkers(cfg config.ClientWorkers, services *service.ClientServices, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		newSyncJobWorker(services.SyncJob, cfg.SyncInterval, log),
	}}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that supports it and blocks until they have
// drained.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if s, ok := worker.(StoppableWorker); ok {
			s.Stop()
		}
	}
}

// syncJobWorker adapts the sync job to the Worker interface.
type syncJobWorker struct {
	job      service.SyncJob
	interval time.Duration
	logger   *logger.Logger
}

func newSyncJobWorker(job service.SyncJob, interval time.Duration, log *logger.Logger) StoppableWorker {
	return &syncJobWorker{job: job, interval: interval, logger: log}
}

func (w *syncJobWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting background sync job")
	w.job.Start(context.Background(), w.interval)
}

func (w *syncJobWorker) Stop() {
	w.job.Stop()
}
