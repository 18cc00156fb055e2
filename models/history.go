package models

import "time"

// SyncOp names the engine operation recorded in the local sync history.
type SyncOp string

const (
	SyncOpPush     SyncOp = "push"
	SyncOpPull     SyncOp = "pull"
	SyncOpFullSync SyncOp = "full_sync"
)

// SyncAttempt is one row of the local sync history: an audit record of a
// single engine attempt. History is diagnostic only and never consulted for
// conflict decisions.
type SyncAttempt struct {
	ID                 int64     `json:"id"`
	Op                 SyncOp    `json:"op"`
	StartedAt          time.Time `json:"startedAt"`
	FinishedAt         time.Time `json:"finishedAt"`
	Success            bool      `json:"success"`
	Conflict           bool      `json:"conflict"`
	Error              *string   `json:"error,omitempty"`
	LocalLastModified  *string   `json:"localLastModified,omitempty"`
	RemoteLastModified *string   `json:"remoteLastModified,omitempty"`
}
