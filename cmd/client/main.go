package main

import (
	"fmt"

	"github.com/MKhiriev/carbon/internal/bridge"
	"github.com/MKhiriev/carbon/internal/client"
	"github.com/MKhiriev/carbon/internal/config"
	"github.com/MKhiriev/carbon/internal/handler"
	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/service"
	"github.com/MKhiriev/carbon/internal/store"
	"github.com/MKhiriev/carbon/internal/tui"
	"github.com/MKhiriev/carbon/internal/workers"
	"github.com/MKhiriev/carbon/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("carbon-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	dataDir, err := store.ResolveDataDir(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve data directory")
	}

	b, present := bridge.Resolve(cfg.Bridge, log)
	services := service.NewClientServices(storages, b, present, cfg, dataDir, log)

	ui, err := tui.New(
		handler.NewHandler(storages, services, log),
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(cfg.Workers, services, log), cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
