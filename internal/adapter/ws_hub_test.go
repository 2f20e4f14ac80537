package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*WSHub, *httptest.Server) {
	t.Helper()
	hub := NewWSHub(testPhone, logger.Nop(), models.CapabilityCompanionApp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeStream(w, r, models.Node{ID: testWatch.ID, DisplayName: testWatch.DisplayName})
	}))

	t.Cleanup(func() {
		_ = hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	return dialHubQuery(t, srv, "")
}

func dialHubQuery(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+query, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) models.StreamFrame {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var frame models.StreamFrame
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

// ── Advertised ──────────────────────────────────────────────────────────────

func TestWSHub_Advertised(t *testing.T) {
	hub := NewWSHub(testPhone, logger.Nop(), models.CapabilityCompanionApp)
	defer hub.Close()

	assert.Equal(t, []models.Node{testPhone}, hub.Advertised(models.CapabilityCompanionApp).Nodes)
	assert.Empty(t, hub.Advertised("other").Nodes)
}

// ── Stream ──────────────────────────────────────────────────────────────────

func TestWSHub_ServeStream_SendsAdvertisedCapabilities(t *testing.T) {
	_, srv := newTestHub(t)
	conn := dialHub(t, srv)

	frame := readFrame(t, conn)
	require.Equal(t, models.FrameTypeCapability, frame.Type)
	require.NotNil(t, frame.Capability)
	assert.Equal(t, models.CapabilityCompanionApp, frame.Capability.Name)
	assert.Equal(t, []models.Node{testPhone}, frame.Capability.Nodes)
}

func TestWSHub_ConnectAndDisconnect_NotifyCapability(t *testing.T) {
	hub, srv := newTestHub(t)

	caps := &capabilityRecorder{}
	hub.AddCapabilityListener(caps, models.CapabilityWatchFaceApp)

	conn := dialHub(t, srv)
	require.Eventually(t, func() bool { return hub.Connected(testWatch.ID) }, 2*time.Second, 10*time.Millisecond)

	info, err := hub.GetCapability(context.Background(), models.CapabilityWatchFaceApp)
	require.NoError(t, err)
	require.Len(t, info.Nodes, 1)
	assert.Equal(t, testWatch.ID, info.Nodes[0].ID)
	assert.True(t, info.Nodes[0].Nearby)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return !hub.Connected(testWatch.ID) }, 2*time.Second, 10*time.Millisecond)

	last, ok := caps.last()
	require.True(t, ok)
	assert.Empty(t, last.Nodes)
}

func TestWSHub_StreamWithoutWatchFace_ConnectedOnly(t *testing.T) {
	hub, srv := newTestHub(t)

	dialHubQuery(t, srv, "?capability=other_app")
	require.Eventually(t, func() bool { return hub.Connected(testWatch.ID) }, 2*time.Second, 10*time.Millisecond)

	nodes, err := hub.ConnectedNodes(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, testWatch.ID, nodes[0].ID)

	info, err := hub.GetCapability(context.Background(), models.CapabilityWatchFaceApp)
	require.NoError(t, err)
	assert.Empty(t, info.Nodes)

	info, err = hub.GetCapability(context.Background(), "other_app")
	require.NoError(t, err)
	assert.Len(t, info.Nodes, 1)
}

func TestWSHub_ConnectedNodes_AfterClose(t *testing.T) {
	hub := NewWSHub(testPhone, logger.Nop())
	require.NoError(t, hub.Close())

	_, err := hub.ConnectedNodes(context.Background())
	require.ErrorIs(t, err, ErrTransportClosed)
}

func TestWSHub_SendMessage_PushesFrame(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dialHub(t, srv)
	_ = readFrame(t, conn)

	require.Eventually(t, func() bool { return hub.Connected(testWatch.ID) }, 2*time.Second, 10*time.Millisecond)

	err := hub.SendMessage(context.Background(), testWatch.ID, models.PathBatterySyncActivated, []byte{1})
	require.NoError(t, err)

	frame := readFrame(t, conn)
	require.Equal(t, models.FrameTypeMessage, frame.Type)
	require.NotNil(t, frame.Message)
	assert.Equal(t, testPhone.ID, frame.Message.SourceNodeID)
	assert.Equal(t, models.PathBatterySyncActivated, frame.Message.Path)
	assert.Equal(t, []byte{1}, frame.Message.Data)
}

func TestWSHub_SendMessage_UnknownNode(t *testing.T) {
	hub := NewWSHub(testPhone, logger.Nop())
	defer hub.Close()

	err := hub.SendMessage(context.Background(), "ghost", "/p", nil)
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestWSHub_InboundFrame_ForcesSourceNode(t *testing.T) {
	hub, srv := newTestHub(t)

	rec := &messageRecorder{}
	hub.AddListener(rec)

	conn := dialHub(t, srv)
	_ = readFrame(t, conn)

	msg := models.Message{SourceNodeID: "spoofed", Path: models.PathBatterySyncQueryStatus, Data: []byte{0}}
	data, _ := json.Marshal(models.StreamFrame{Type: models.FrameTypeMessage, Message: &msg})
	require.NoError(t, conn.Write(context.Background(), websocket.MessageText, data))

	require.Eventually(t, func() bool { return len(rec.messages()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, testWatch.ID, rec.messages()[0].SourceNodeID)
}

// ── Deliver ─────────────────────────────────────────────────────────────────

func TestWSHub_Deliver(t *testing.T) {
	hub := NewWSHub(testPhone, logger.Nop())
	defer hub.Close()

	rec := &messageRecorder{}
	hub.AddListener(rec)

	require.NoError(t, hub.Deliver(models.Message{SourceNodeID: testWatch.ID, Path: "/p"}))
	require.Eventually(t, func() bool { return len(rec.messages()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestWSHub_Deliver_AfterClose(t *testing.T) {
	hub := NewWSHub(testPhone, logger.Nop())
	require.NoError(t, hub.Close())

	require.ErrorIs(t, hub.Deliver(models.Message{}), ErrTransportClosed)
}
