package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/client"
	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/internal/store"
	"github.com/MKhiriev/watchface-sync/internal/tui"
	"github.com/MKhiriev/watchface-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetWearableConfig()
	if err != nil {
		logger.NewLogger("wearable").Fatal().Err(err).Msg("error getting configs")
	}

	// stdout belongs to the TUI
	log := logger.NewFileLogger("wearable", cfg.Log.File)
	log.Debug().Str("node_id", cfg.App.NodeID).Str("phone", cfg.Adapter.PhoneAddress).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("wearable run error")
	}
}

func run(cfg *config.WearableConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create companion transport: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		_ = transport.Close()
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	services := service.NewWearableServices(ctx, transport, storages.Preferences, cfg, log)

	ui, err := tui.New(services, storages.Preferences.BatterySync(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		_ = services.Close()
		_ = transport.Close()
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(transport, services, ui, log)
	if err != nil {
		_ = services.Close()
		_ = transport.Close()
		return fmt.Errorf("init client app error: %w", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing client app")
		}
	}()

	return app.Run(ctx)
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
