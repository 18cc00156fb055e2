// Package tui contains the terminal shell of the carbon client: a status
// page over the command surface with keys for sync, push, pull, update
// checks and remote-data management. All blocking commands run inside
// tea.Cmd goroutines so the UI thread never waits on the network.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/carbon/internal/handler"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	handler *handler.Handler
	info    models.AppBuildInfo
}

func New(h *handler.Handler, info models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{handler: h, info: info}, nil
}

// Run drives the status screen until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.handler, t.info)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
