package client

import (
	"context"

	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/tui"
	"github.com/MKhiriev/carbon/internal/workers"
)

// App ties the UI shell and the background workers to a single lifecycle.
type App struct {
	ui      *tui.TUI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(ui *tui.TUI, workers *workers.Workers, _ config.ClientWorkers, log *logger.Logger) (*App, error) {
	return &App{ui: ui, workers: workers, logger: log}, nil
}

// Run starts the background workers, hands the terminal to the UI shell and
// drains the workers once the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	a.workers.Run()
	defer a.workers.Stop()

	return a.ui.Run(ctx)
}
