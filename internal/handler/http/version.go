package http

import (
	"net/http"

	"github.com/MKhiriev/watchface-sync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := h.services.AppInfo.GetBuildInfo(ctx).ToResponse()
	resp.Version = h.services.AppInfo.GetAppVersion(ctx)

	utils.WriteJSON(w, resp, http.StatusOK)
}
