package models

// ReleaseManifest is the published release descriptor fetched by the update
// checker.
type ReleaseManifest struct {
	Version string `json:"version"`
	Notes   string `json:"notes,omitempty"`
	URL     string `json:"url"`
}

// UpdateInfo is the answer to a checkForUpdates command.
type UpdateInfo struct {
	Available bool    `json:"available"`
	Version   *string `json:"version,omitempty"`
	Body      *string `json:"body,omitempty"`
}
