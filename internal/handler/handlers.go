package handler

import (
	"fmt"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/handler/grpc"
	"github.com/MKhiriev/watchface-sync/internal/handler/http"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/internal/utils"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.CompanionServices, hub *adapter.WSHub, cfg *config.CompanionConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		keys, err := utils.DerivePairingKeys(cfg.App.PairingSecret)
		if err != nil {
			return nil, fmt.Errorf("error deriving pairing keys: %w", err)
		}
		handlers.HTTP = http.NewHandler(services, hub, keys, cfg.Server.RequestTimeout, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, hub, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
