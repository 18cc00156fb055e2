package service

import "errors"

var (
	// ErrSnapshotEncode is returned inside outcomes when the local document
	// cannot be serialized for upload.
	ErrSnapshotEncode = errors.New("error encoding workspace document for sync")

	// ErrRemoteDecode is returned inside outcomes when the replica record
	// cannot be decoded into a workspace document.
	ErrRemoteDecode = errors.New("error decoding remote workspace document")

	// ErrManifestFetch is returned when the release manifest cannot be
	// fetched or parsed.
	ErrManifestFetch = errors.New("error fetching release manifest")

	// ErrAssetDownload is returned when the release asset download fails.
	ErrAssetDownload = errors.New("error downloading release asset")
)
