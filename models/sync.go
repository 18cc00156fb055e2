package models

// RemoteRecord is the raw replica record as returned by the bridge: the
// serialized synchronized projection plus the watermark stored next to it.
// Payload is opaque to the bridge; only the engine decodes it.
type RemoteRecord struct {
	Payload      string `json:"payload"`
	LastModified string `json:"lastModified"`
	// ShouldUpdateLocal is the bridge's verdict after comparing watermarks
	// during a full sync. The engine never re-implements the comparison; it
	// only honors this flag.
	ShouldUpdateLocal bool `json:"shouldUpdateLocal"`
}

// SyncOutcome is the typed result of one sync attempt as surfaced to the UI
// shell. Exactly one outcome is produced per logical operation, including the
// push→pull conflict fallback which reports the pull's outcome.
//
// Invariant: ShouldUpdateLocal implies RemoteSnapshot and RemoteLastModified
// are non-nil and the remote watermark is authoritative relative to the one
// that was sent.
type SyncOutcome struct {
	Success            bool     `json:"success"`
	ShouldUpdateLocal  bool     `json:"shouldUpdateLocal"`
	Error              *string  `json:"error,omitempty"`
	RemoteSnapshot     *AppData `json:"remoteSnapshot,omitempty"`
	RemoteLastModified *string  `json:"remoteLastModified,omitempty"`
}

// FailedOutcome builds a negative outcome carrying msg verbatim.
func FailedOutcome(msg string) SyncOutcome {
	return SyncOutcome{Error: &msg}
}

// SyncStatusResult pairs the coarse status with an optional provider error.
type SyncStatusResult struct {
	Status SyncStatus `json:"status"`
	Error  *string    `json:"error,omitempty"`
}

// AccountStatusResult is the on-demand answer to an account availability
// query. It is never cached beyond the call that produced it.
type AccountStatusResult struct {
	Available bool                `json:"available"`
	Status    AccountAvailability `json:"status"`
	Error     *string             `json:"error,omitempty"`
}
