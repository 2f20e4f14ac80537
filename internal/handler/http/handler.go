package http

import (
	"time"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/internal/utils"
	"github.com/MKhiriev/watchface-sync/internal/validators"
)

type Handler struct {
	services *service.CompanionServices
	hub      *adapter.WSHub

	messageValidator validators.Validator

	hasher   *utils.Hasher
	tokenKey []byte

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.CompanionServices, hub *adapter.WSHub, keys utils.PairingKeys, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		hub:              hub,
		messageValidator: validators.NewMessageValidator(),
		hasher:           utils.NewHasher(keys.HMACKey),
		tokenKey:         keys.TokenKey,
		requestTimeout:   requestTimeout,
		logger:           logger,
	}
}
