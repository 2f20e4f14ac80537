package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/mock"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/internal/utils"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPairingSecret = "correct horse battery staple"

var (
	testPhone = models.Node{ID: "phone-1", DisplayName: "Pixel", Nearby: true}
	testWatch = models.Node{ID: "watch-1", DisplayName: "Galaxy Watch"}
)

// testAPI bundles a Handler over a real hub with mocked companion services.
type testAPI struct {
	h         *Handler
	hub       *adapter.WSHub
	keys      utils.PairingKeys
	hasher    *utils.Hasher
	companion *mock.MockCompanionService
	appInfo   *mock.MockAppInfoService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	keys, err := utils.DerivePairingKeys(testPairingSecret)
	require.NoError(t, err)

	hub := adapter.NewWSHub(testPhone, logger.Nop(), models.CapabilityCompanionApp)
	t.Cleanup(func() { _ = hub.Close() })

	companion := mock.NewMockCompanionService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	services := &service.CompanionServices{Companion: companion, AppInfo: appInfo}

	return &testAPI{
		h:         NewHandler(services, hub, keys, time.Second, logger.Nop()),
		hub:       hub,
		keys:      keys,
		hasher:    utils.NewHasher(keys.HMACKey),
		companion: companion,
		appInfo:   appInfo,
	}
}

func (a *testAPI) bearer(t *testing.T, node models.Node) string {
	t.Helper()
	token, err := utils.GenerateNodeToken(node, time.Minute, a.keys.TokenKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// messageRequest builds a signed POST /api/messages request sent by node.
func (a *testAPI) messageRequest(t *testing.T, node models.Node, req models.SendMessageRequest) *http.Request {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", a.bearer(t, node))
	r.Header.Set(utils.HashHeader, a.hasher.SumHex(body))
	return r
}

// inbox records messages the hub hands to its listeners.
type inbox struct {
	mu   sync.Mutex
	msgs []models.Message
}

func (i *inbox) OnMessageReceived(msg models.Message) {
	i.mu.Lock()
	i.msgs = append(i.msgs, msg)
	i.mu.Unlock()
}

func (i *inbox) messages() []models.Message {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]models.Message(nil), i.msgs...)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	keys, err := utils.DerivePairingKeys(testPairingSecret)
	require.NoError(t, err)
	hub := adapter.NewWSHub(testPhone, logger.Nop())
	t.Cleanup(func() { _ = hub.Close() })
	svc := &service.CompanionServices{}
	log := logger.Nop()

	h := NewHandler(svc, hub, keys, 3*time.Second, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, hub, h.hub)
	assert.Equal(t, keys.TokenKey, h.tokenKey)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.hasher)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	keys, err := utils.DerivePairingKeys(testPairingSecret)
	require.NoError(t, err)

	h1 := NewHandler(&service.CompanionServices{}, nil, keys, 0, logger.Nop())
	h2 := NewHandler(&service.CompanionServices{}, nil, keys, 0, logger.Nop())

	assert.NotSame(t, h1, h2)
}
