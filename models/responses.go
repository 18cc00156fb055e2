package models

// Responses of the command surface consumed by the UI shell. Every command
// answers with a well-formed value; failures travel inside the response, the
// shell never sees a bare transport error for remote operations.

// ReadDataResponse carries the workspace document to render.
type ReadDataResponse struct {
	Data AppData `json:"data"`
}

// WriteDataResponse acknowledges a persisted workspace document.
type WriteDataResponse struct {
	Written bool `json:"written"`
	// LastModified is the watermark stamped on the document before the save.
	LastModified string `json:"lastModified"`
}

// DataPathResponse names the on-disk location of the workspace document.
type DataPathResponse struct {
	Path string `json:"path"`
}

// CheckAccountResponse answers a checkAccount command.
type CheckAccountResponse struct {
	Available bool `json:"available"`
}

// DeleteRemoteDataResponse acknowledges a remote-replica wipe.
type DeleteRemoteDataResponse struct {
	Deleted bool `json:"deleted"`
}

// InitSyncResponse reports bridge bootstrap results. Subscriptions is
// best-effort: false does not imply Initialized is false.
type InitSyncResponse struct {
	Initialized   bool `json:"initialized"`
	Subscriptions bool `json:"subscriptions"`
}

// InstallUpdateResponse reports where the downloaded release asset was
// placed for the platform installer to pick up.
type InstallUpdateResponse struct {
	Installed bool    `json:"installed"`
	Path      *string `json:"path,omitempty"`
	Error     *string `json:"error,omitempty"`
}
