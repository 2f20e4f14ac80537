package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/utils"
	"github.com/MKhiriev/watchface-sync/internal/validators"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── POST /api/messages ───────────────────────────────────────────────────────

func TestPostMessage_QueuesForListeners(t *testing.T) {
	api := newTestAPI(t)
	in := &inbox{}
	api.hub.AddListener(in)

	msg := models.Message{SourceNodeID: testWatch.ID, Path: models.PathBatterySyncQueryStatus, Data: []byte{1}}
	req := api.messageRequest(t, testWatch, models.SendMessageRequest{TargetNodeID: testPhone.ID, Message: msg})
	rec := httptest.NewRecorder()
	api.h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Eventually(t, func() bool { return len(in.messages()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, msg, in.messages()[0])
}

func TestPostMessage_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		req        models.SendMessageRequest
		wantStatus int
		wantBody   string
	}{
		{
			name: "source does not match token",
			req: models.SendMessageRequest{
				TargetNodeID: testPhone.ID,
				Message:      models.Message{SourceNodeID: "someone-else", Path: models.PathBatterySyncQueryStatus, Data: []byte{1}},
			},
			wantStatus: http.StatusForbidden,
			wantBody:   ErrSourceNodeMismatch.Error(),
		},
		{
			name: "unknown target node",
			req: models.SendMessageRequest{
				TargetNodeID: "other-phone",
				Message:      models.Message{SourceNodeID: testWatch.ID, Path: models.PathBatterySyncQueryStatus, Data: []byte{1}},
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "empty path",
			req: models.SendMessageRequest{
				TargetNodeID: testPhone.ID,
				Message:      models.Message{SourceNodeID: testWatch.ID, Data: []byte{1}},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   validators.ErrEmptyMessagePath.Error(),
		},
		{
			name: "oversized payload",
			req: models.SendMessageRequest{
				TargetNodeID: testPhone.ID,
				Message:      models.Message{SourceNodeID: testWatch.ID, Path: models.PathBatteryLevel, Data: make([]byte, validators.MaxPayloadBytes+1)},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   validators.ErrPayloadTooLarge.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			in := &inbox{}
			api.hub.AddListener(in)

			rec := httptest.NewRecorder()
			api.h.Init().ServeHTTP(rec, api.messageRequest(t, testWatch, tt.req))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.Empty(t, in.messages())
		})
	}
}

func TestPostMessage_InvalidJSON(t *testing.T) {
	api := newTestAPI(t)
	body := []byte(`{"target_node_id":`)

	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	req.Header.Set("Authorization", api.bearer(t, testWatch))
	req.Header.Set(utils.HashHeader, api.hasher.SumHex(body))
	rec := httptest.NewRecorder()
	api.h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostMessage_TamperedBody(t *testing.T) {
	api := newTestAPI(t)
	msg := models.Message{SourceNodeID: testWatch.ID, Path: models.PathBatterySyncQueryStatus, Data: []byte{1}}
	req := api.messageRequest(t, testWatch, models.SendMessageRequest{TargetNodeID: testPhone.ID, Message: msg})
	req.Header.Set(utils.HashHeader, api.hasher.SumHex([]byte("something else")))

	rec := httptest.NewRecorder()
	api.h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrIntegrityCheck.Error())
}

func TestPostMessage_NoToken(t *testing.T) {
	api := newTestAPI(t)
	msg := models.Message{SourceNodeID: testWatch.ID, Path: models.PathBatterySyncQueryStatus, Data: []byte{1}}
	req := api.messageRequest(t, testWatch, models.SendMessageRequest{TargetNodeID: testPhone.ID, Message: msg})
	req.Header.Del("Authorization")

	rec := httptest.NewRecorder()
	api.h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPostMessage_HubClosed(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.hub.Close())

	msg := models.Message{SourceNodeID: testWatch.ID, Path: models.PathBatterySyncQueryStatus, Data: []byte{0}}
	rec := httptest.NewRecorder()
	api.h.Init().ServeHTTP(rec, api.messageRequest(t, testWatch, models.SendMessageRequest{TargetNodeID: testPhone.ID, Message: msg}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// ── GET /api/capabilities/{capability} ───────────────────────────────────────

func TestGetCapability(t *testing.T) {
	tests := []struct {
		name       string
		capability string
		wantNodes  []models.Node
	}{
		{
			name:       "capability advertised by the phone",
			capability: models.CapabilityCompanionApp,
			wantNodes:  []models.Node{testPhone},
		},
		{
			name:       "watch face capability without connected wearables",
			capability: models.CapabilityWatchFaceApp,
			wantNodes:  []models.Node{},
		},
		{
			name:       "unknown capability",
			capability: "premium",
			wantNodes:  []models.Node{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			req := httptest.NewRequest(http.MethodGet, "/api/capabilities/"+tt.capability, nil)
			req.Header.Set("Authorization", api.bearer(t, testWatch))
			rec := httptest.NewRecorder()
			api.h.Init().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var info models.CapabilityInfo
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
			assert.Equal(t, tt.capability, info.Name)
			assert.Equal(t, tt.wantNodes, info.Nodes)
		})
	}
}

func TestGetCapability_Unauthorized(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/capabilities/"+models.CapabilityCompanionApp, nil)
	rec := httptest.NewRecorder()
	api.h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ── GET /api/ws ──────────────────────────────────────────────────────────────

func dialStream(t *testing.T, api *testAPI, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	header := http.Header{}
	header.Set("Authorization", api.bearer(t, testWatch))

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	conn, _, err := websocket.Dial(context.Background(), url, &websocket.DialOptions{HTTPHeader: header})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) models.StreamFrame {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var frame models.StreamFrame
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func TestStream_PushesCapabilitiesAndMessages(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.h.Init())
	t.Cleanup(srv.Close)

	conn := dialStream(t, api, srv)

	frame := readFrame(t, conn)
	require.Equal(t, models.FrameTypeCapability, frame.Type)
	require.NotNil(t, frame.Capability)
	assert.Equal(t, models.CapabilityCompanionApp, frame.Capability.Name)
	assert.Equal(t, []models.Node{testPhone}, frame.Capability.Nodes)

	require.Eventually(t, func() bool { return api.hub.Connected(testWatch.ID) }, time.Second, 5*time.Millisecond)
	require.NoError(t, api.hub.SendMessage(context.Background(), testWatch.ID, models.PathBatterySyncActivated, []byte{1}))

	frame = readFrame(t, conn)
	require.Equal(t, models.FrameTypeMessage, frame.Type)
	require.NotNil(t, frame.Message)
	assert.Equal(t, models.PathBatterySyncActivated, frame.Message.Path)
	assert.Equal(t, []byte{1}, frame.Message.Data)
}

func TestStream_ConnectedWearableIsReportedAsCapability(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.h.Init())
	t.Cleanup(srv.Close)

	dialStream(t, api, srv)
	require.Eventually(t, func() bool { return api.hub.Connected(testWatch.ID) }, time.Second, 5*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/capabilities/"+models.CapabilityWatchFaceApp, nil)
	req.Header.Set("Authorization", api.bearer(t, testWatch))
	rec := httptest.NewRecorder()
	api.h.Init().ServeHTTP(rec, req)

	var info models.CapabilityInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	require.Len(t, info.Nodes, 1)
	assert.Equal(t, testWatch.ID, info.Nodes[0].ID)
	assert.True(t, info.Nodes[0].Nearby)
}

func TestStream_Unauthorized(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.h.Init())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	_, resp, err := websocket.Dial(context.Background(), url, nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
