package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	// wearable transport: node token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// the stream outlives any request timeout
		r.Get("/api/ws", h.stream)

		r.Group(func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}
			r.With(h.verifyHashing).Post("/api/messages", h.postMessage)
			r.With(withGZip).Get("/api/capabilities/{capability}", h.getCapability)
		})
	})

	// operator endpoints of the phone, loopback only
	router.Group(func(r chi.Router) {
		r.Use(h.localOnly)

		r.Get("/api/companion/wearable", h.getWearableStatus)
		r.Put("/api/companion/battery-sync", h.putBatterySync)
		r.Post("/api/companion/battery", h.postBatteryLevel)
		r.Put("/api/companion/premium", h.putPremium)
		r.Put("/api/companion/notifications-sync", h.putNotificationsSync)
	})

	router.With(withGZip).Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
