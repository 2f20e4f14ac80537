package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/utils"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/go-chi/chi/v5"
)

// postMessage accepts a datagram from an authenticated wearable and queues it
// for the companion's message listeners. Delivery is fire-and-forget: 202
// means the message was queued, not that anybody handled it.
func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	node, ok := utils.GetNodeFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.postMessage").Msg("no node in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SendMessageRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.postMessage").Msg("invalid message body")
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.messageValidator.Validate(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.postMessage").Msg("message rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case req.Message.SourceNodeID != node.ID:
		log.Warn().Str("func", "*Handler.postMessage").
			Str("node_id", node.ID).
			Str("source_node_id", req.Message.SourceNodeID).
			Msg("source does not match token")
		http.Error(w, ErrSourceNodeMismatch.Error(), http.StatusForbidden)
		return
	case req.TargetNodeID != h.hub.LocalNode().ID:
		http.Error(w, adapter.ErrNodeNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := h.hub.Deliver(req.Message); err != nil {
		log.Err(err).Str("func", "*Handler.postMessage").Str("path", req.Message.Path).Msg("message not queued")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("func", "*Handler.postMessage").
		Str("node_id", node.ID).
		Str("path", req.Message.Path).
		Msg("message queued")
	w.WriteHeader(http.StatusAccepted)
}

// getCapability reports the nodes advertising a capability. Capabilities the
// phone itself advertises are answered with the phone node; everything else
// is resolved against the connected wearables.
func (h *Handler) getCapability(w http.ResponseWriter, r *http.Request) {
	capability := chi.URLParam(r, "capability")

	info := h.hub.Advertised(capability)
	if len(info.Nodes) == 0 {
		var err error
		if info, err = h.hub.GetCapability(r.Context(), capability); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.getCapability").Send()
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
	}

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getCapability").Msg("write response")
	}
}

// stream upgrades to the websocket the wearable receives messages on.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	node, ok := utils.GetNodeFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	log.Info().Str("func", "*Handler.stream").Str("node_id", node.ID).Msg("wearable stream opened")
	err := h.hub.ServeStream(w, r, node)
	switch {
	case errors.Is(err, adapter.ErrTransportClosed):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case err != nil:
		log.Warn().Err(err).Str("func", "*Handler.stream").Str("node_id", node.ID).Msg("wearable stream ended")
	default:
		log.Info().Str("func", "*Handler.stream").Str("node_id", node.ID).Msg("wearable stream closed")
	}
}
