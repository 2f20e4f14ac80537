package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/handler"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/server"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/internal/store"
	"github.com/MKhiriev/watchface-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("companion")
	cfg, err := config.GetCompanionConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("node_id", cfg.App.NodeID).
		Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	node := models.Node{ID: cfg.App.NodeID, DisplayName: cfg.App.NodeName, Nearby: true}
	hub := adapter.NewWSHub(node, log, models.CapabilityCompanionApp)
	defer hub.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewCompanionServices(hub, storages.Preferences, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer services.Close()

	handlers, err := handler.NewHandlers(services, hub, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
