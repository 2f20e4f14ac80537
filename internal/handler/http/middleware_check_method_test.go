// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/messages", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("messages"))
	})
	router.Post("/api/messages", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/api/capabilities/{capability}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "capability")))
	})
	router.Delete("/api/resource", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// ---- Table test ----

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "GET /api/messages: registered",
			method:         http.MethodGet,
			path:           "/api/messages",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /api/messages: registered",
			method:         http.MethodPost,
			path:           "/api/messages",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "GET /api/capabilities/{capability}: parameterised route",
			method:         http.MethodGet,
			path:           "/api/capabilities/watchface_app",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "DELETE /api/messages: method not registered → 404",
			method:         http.MethodDelete,
			path:           "/api/messages",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "PUT /api/capabilities/{capability}: parameterised, method not registered → 404",
			method:         http.MethodPut,
			path:           "/api/capabilities/watchface_app",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "HEAD /api/messages: not registered → 404",
			method:         http.MethodHead,
			path:           "/api/messages",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "GET /api/resource: method not registered → 404",
			method:         http.MethodGet,
			path:           "/api/resource",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "GET /api/nonexistent: route does not exist",
			method:         http.MethodGet,
			path:           "/api/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/capabilities/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc", rr.Body.String())
}

// Called directly, the handler forwards requests whose method is registered.
func TestCheckHTTPMethod_DirectCall_ForwardsRegisteredMethod(t *testing.T) {
	router := buildRouter()
	check := CheckHTTPMethod(router)

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rr := httptest.NewRecorder()
	check(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "messages", rr.Body.String())
}
