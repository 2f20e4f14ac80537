// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/utils"
	"github.com/MKhiriev/watchface-sync/models"
)

type wearableStatusResponse struct {
	Status models.WearableStatus `json:"status"`
}

type batterySyncRequest struct {
	Activated *bool `json:"activated"`
}

type batteryLevelRequest struct {
	Level *int `json:"level"`
}

type premiumRequest struct {
	Premium *bool `json:"premium"`
}

type notificationsSyncRequest struct {
	Status *models.NotificationsSyncStatus `json:"status"`
}

func (h *Handler) getWearableStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.Companion.GetWearableStatus(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getWearableStatus").Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, wearableStatusResponse{Status: status}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getWearableStatus").Msg("write response")
	}
}

// putBatterySync pushes the phone's battery-sync preference to the wearable.
func (h *Handler) putBatterySync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req batterySyncRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil || req.Activated == nil {
		log.Error().Err(err).Str("func", "*Handler.putBatterySync").Msg("invalid body")
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.services.Companion.SendBatterySyncStatus(r.Context(), *req.Activated); err != nil {
		log.Err(err).Str("func", "*Handler.putBatterySync").Bool("activated", *req.Activated).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// postBatteryLevel sends a one-off battery level to the wearable, outside of
// the periodic report.
func (h *Handler) postBatteryLevel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req batteryLevelRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil || req.Level == nil {
		log.Error().Err(err).Str("func", "*Handler.postBatteryLevel").Msg("invalid body")
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.services.Companion.SendBatteryStatus(r.Context(), *req.Level); err != nil {
		log.Err(err).Str("func", "*Handler.postBatteryLevel").Int("level", *req.Level).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) putPremium(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req premiumRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil || req.Premium == nil {
		log.Error().Err(err).Str("func", "*Handler.putPremium").Msg("invalid body")
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.services.Companion.SendPremiumStatus(r.Context(), *req.Premium); err != nil {
		log.Err(err).Str("func", "*Handler.putPremium").Bool("premium", *req.Premium).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// putNotificationsSync pushes the notification mirroring state (0 off,
// 1 on, 2 on without permission) to the wearable.
func (h *Handler) putNotificationsSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req notificationsSyncRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil || req.Status == nil {
		log.Error().Err(err).Str("func", "*Handler.putNotificationsSync").Msg("invalid body")
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.services.Companion.SendNotificationsSyncStatus(r.Context(), *req.Status); err != nil {
		log.Err(err).Str("func", "*Handler.putNotificationsSync").Stringer("status", *req.Status).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
