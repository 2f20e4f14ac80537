package grpc

import (
	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Health service names reported by the companion.
const (
	// CompanionServiceName is SERVING while the companion runs.
	CompanionServiceName = "watchface.Companion"

	// WearableServiceName is SERVING while at least one wearable with the
	// watch face holds a stream to the companion.
	WearableServiceName = "watchface.Wearable"
)

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. The wearable status is
// driven by capability changes of the companion transport.
type Handler struct {
	// services provides access to companion business operations.
	services *service.CompanionServices

	// capabilities notifies the handler when wearables come and go.
	capabilities adapter.CapabilityClient

	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

var _ adapter.CapabilityListener = (*Handler)(nil)

// NewHandler constructs a [Handler] with the companion services, the
// transport whose watch-face capability is mirrored into health status and
// a logger.
func NewHandler(services *service.CompanionServices, capabilities adapter.CapabilityClient, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:     services,
		capabilities: capabilities,
		health:       health.NewServer(),
		logger:       logger,
	}
}

// Register attaches the health service to server, marks the companion
// SERVING and starts following wearable connectivity.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)

	h.health.SetServingStatus(CompanionServiceName, healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(WearableServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	if h.capabilities != nil {
		h.capabilities.AddCapabilityListener(h, models.CapabilityWatchFaceApp)
	}
}

// OnCapabilityChanged updates [WearableServiceName] from the connected
// wearables.
func (h *Handler) OnCapabilityChanged(info models.CapabilityInfo) {
	if info.Name != models.CapabilityWatchFaceApp {
		return
	}

	status := healthpb.HealthCheckResponse_NOT_SERVING
	if len(info.Nodes) > 0 {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.logger.Debug().
		Str("func", "*Handler.OnCapabilityChanged").
		Int("wearables", len(info.Nodes)).
		Str("status", status.String()).
		Msg("wearable health updated")
	h.health.SetServingStatus(WearableServiceName, status)
}

// Shutdown stops following the transport and flips every service to
// NOT_SERVING so that watchers see the companion going away.
func (h *Handler) Shutdown() {
	if h.capabilities != nil {
		h.capabilities.RemoveCapabilityListener(h, models.CapabilityWatchFaceApp)
	}
	h.health.Shutdown()
}
