package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/internal/workers"
)

var errNilDependency = errors.New("client app dependency is nil")

var _ Client = (*App)(nil)

type App struct {
	connector Connector
	services  *service.WearableServices
	workers   *workers.Workers
	ui        UI

	logger *logger.Logger
}

func NewApp(connector Connector, services *service.WearableServices, ui UI, logger *logger.Logger) (*App, error) {
	if connector == nil || services == nil || ui == nil {
		return nil, errNilDependency
	}

	return &App{
		connector: connector,
		services:  services,
		workers:   workers.NewWorkers(logger, services.Discovery),
		ui:        ui,
		logger:    logger,
	}, nil
}

// Run connects to the companion, starts discovery and blocks in the UI.
// Background work is stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.connector.Start(ctx)

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		a.logger.Error().Err(err).Str("func", "*App.Run").Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Str("func", "*App.Run").Msg("ui closed by user")
	return nil
}

// Close detaches the services and closes the companion connection.
func (a *App) Close() error {
	return errors.Join(a.services.Close(), a.connector.Close())
}
