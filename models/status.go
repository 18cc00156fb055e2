package models

// SyncStatus is the coarse, process-wide sync state. It is mutated only by
// the sync engine after an attempt completes and resets on process restart.
// The integer codes match the bridge wire protocol.
type SyncStatus int32

const (
	SyncIdle SyncStatus = iota
	SyncSyncing
	SyncSynced
	SyncError
	SyncOffline
)

// SyncStatusFromCode maps a bridge status code to a SyncStatus. Unknown codes
// collapse to SyncError.
func SyncStatusFromCode(code int32) SyncStatus {
	if code < int32(SyncIdle) || code > int32(SyncOffline) {
		return SyncError
	}
	return SyncStatus(code)
}

func (s SyncStatus) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncSyncing:
		return "syncing"
	case SyncSynced:
		return "synced"
	case SyncOffline:
		return "offline"
	default:
		return "error"
	}
}

// MarshalText serializes the status as its lowercase name for the UI shell.
func (s SyncStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AccountAvailability describes the remote account state at query time.
type AccountAvailability int32

const (
	AccountAvailable AccountAvailability = iota
	AccountNone
	AccountRestricted
	AccountCouldNotDetermine
	AccountTemporarilyUnavailable
	AccountError
)

// AccountAvailabilityFromCode maps a bridge account code. Unknown codes
// collapse to AccountError.
func AccountAvailabilityFromCode(code int32) AccountAvailability {
	if code < int32(AccountAvailable) || code > int32(AccountError) {
		return AccountError
	}
	return AccountAvailability(code)
}

func (a AccountAvailability) String() string {
	switch a {
	case AccountAvailable:
		return "available"
	case AccountNone:
		return "no_account"
	case AccountRestricted:
		return "restricted"
	case AccountCouldNotDetermine:
		return "could_not_determine"
	case AccountTemporarilyUnavailable:
		return "temporarily_unavailable"
	default:
		return "error"
	}
}

func (a AccountAvailability) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
