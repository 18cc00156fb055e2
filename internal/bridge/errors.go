package bridge

import "errors"

// UnavailableMsg is the fixed message every sync command answers with when
// the capability is absent in this build or disabled by configuration.
const UnavailableMsg = "sync is not available in this build"

var (
	// ErrConflict signals a compare-and-swap failure: the replica holds data
	// newer than the watermark that was sent.
	ErrConflict = errors.New("remote replica holds newer data")

	// ErrNoRemoteData signals that the replica holds no record yet.
	ErrNoRemoteData = errors.New("no remote data")

	// ErrUnavailable signals that the provider endpoint cannot be reached.
	ErrUnavailable = errors.New("sync provider unavailable")

	// ErrAccountUnavailable signals that the provider rejected the request
	// because no usable account is present.
	ErrAccountUnavailable = errors.New("provider account unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrInternalServerError = errors.New("provider internal error")
)
