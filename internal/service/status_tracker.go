package service

import (
	"sync"

	"github.com/MKhiriev/carbon/models"
)

type statusTracker struct {
	mu   sync.RWMutex
	last models.SyncStatus
}

// NewStatusTracker returns a [StatusTracker] starting at SyncIdle.
func NewStatusTracker() StatusTracker {
	return &statusTracker{last: models.SyncIdle}
}

func (t *statusTracker) Set(status models.SyncStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = status
}

func (t *statusTracker) Current() models.SyncStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last
}
