package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/models"
)

var errorStatusMap = map[error]int{
	models.ErrInvalidBatteryLevel: http.StatusBadRequest,
	models.ErrEmptyPayload:        http.StatusBadRequest,

	models.ErrInvalidNotificationsSyncStatus: http.StatusBadRequest,

	service.ErrNoWearableConnected: http.StatusConflict,
	service.ErrServiceClosed:       http.StatusServiceUnavailable,

	adapter.ErrNodeNotFound:    http.StatusNotFound,
	adapter.ErrInboxFull:       http.StatusServiceUnavailable,
	adapter.ErrTransportClosed: http.StatusServiceUnavailable,
	adapter.ErrBadRequest:      http.StatusBadRequest,
	adapter.ErrUnauthorized:    http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
