package tui

import (
	"github.com/MKhiriev/carbon/models"
)

type statusLoadedMsg struct {
	status  models.SyncStatusResult
	account models.AccountStatusResult
	path    string
}

type historyLoadedMsg struct {
	attempts []models.SyncAttempt
}

type syncDoneMsg struct {
	op      string
	outcome models.SyncOutcome
}

type updateCheckedMsg struct {
	info models.UpdateInfo
	err  error
}

type installDoneMsg struct {
	resp models.InstallUpdateResponse
}

type initDoneMsg struct {
	resp models.InitSyncResponse
}

type deleteDoneMsg struct {
	deleted bool
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
