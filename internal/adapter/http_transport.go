// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/utils"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/coder/websocket"
)

// HTTPTransport is the wearable side of the companion transport.
//
// Outbound messages and capability lookups go to the companion REST API;
// inbound messages and capability changes arrive over a websocket stream
// that is re-dialled until [HTTPTransport.Close] is called.
type HTTPTransport struct {
	client  *utils.HTTPClient
	baseURL string
	node    models.Node

	hasher   *utils.Hasher
	tokenKey []byte
	tokenTTL time.Duration

	reconnectDelay time.Duration

	mu           sync.RWMutex
	msgListeners []MessageListener
	capListeners map[string][]CapabilityListener
	// phone nodes announced on the current stream
	peers []models.Node

	cancel    context.CancelFunc
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	logger *logger.Logger
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport constructs an [HTTPTransport] for the companion reachable
// at adapterCfg.PhoneAddress. Request signing keys are derived from
// appCfg.PairingSecret.
//
// Returns an error if the address cannot be parsed, the node ID is empty or
// the pairing secret is empty.
func NewHTTPTransport(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (*HTTPTransport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.PhoneAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter phone address: %w", err)
	}
	if appCfg.NodeID == "" {
		return nil, fmt.Errorf("%w: empty node id", ErrBadRequest)
	}

	keys, err := utils.DerivePairingKeys(appCfg.PairingSecret)
	if err != nil {
		return nil, fmt.Errorf("derive pairing keys: %w", err)
	}

	return &HTTPTransport{
		client:         utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL:        baseURL,
		node:           models.Node{ID: appCfg.NodeID, DisplayName: appCfg.NodeName},
		hasher:         utils.NewHasher(keys.HMACKey),
		tokenKey:       keys.TokenKey,
		tokenTTL:       appCfg.TokenTTL,
		reconnectDelay: adapterCfg.ReconnectDelay,
		capListeners:   make(map[string][]CapabilityListener),
		closed:         make(chan struct{}),
		logger:         logger.WithComponent("http_transport"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// LocalNode returns the wearable node this transport authenticates as.
func (h *HTTPTransport) LocalNode() models.Node { return h.node }

// Start launches the websocket stream loop. It returns immediately; the loop
// runs until ctx is cancelled or the transport is closed.
func (h *HTTPTransport) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	h.cancel = cancel
	h.mu.Unlock()

	h.wg.Add(1)
	go h.streamLoop(ctx)
}

// Close stops the stream loop and fails subsequent sends with
// [ErrTransportClosed].
func (h *HTTPTransport) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		h.mu.RLock()
		cancel := h.cancel
		h.mu.RUnlock()
		if cancel != nil {
			cancel()
		}
	})
	h.wg.Wait()
	return nil
}

// SendMessage POSTs the message to /api/messages. The JSON body is signed
// with the pairing HMAC key in the [utils.HashHeader] header.
func (h *HTTPTransport) SendMessage(ctx context.Context, nodeID, path string, data []byte) error {
	if err := h.ready(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(models.SendMessageRequest{
		TargetNodeID: nodeID,
		Message: models.Message{
			SourceNodeID: h.node.ID,
			Path:         path,
			Data:         data,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	token, err := h.bearer()
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", token).
		SetHeader(utils.HashHeader, h.hasher.SumHex(body)).
		SetBody(body).
		Post("/api/messages")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("send %s to %s: %w", path, nodeID, err)
	}
	return nil
}

// GetCapability asks the companion which nodes advertise capability.
func (h *HTTPTransport) GetCapability(ctx context.Context, capability string) (models.CapabilityInfo, error) {
	if err := h.ready(ctx); err != nil {
		return models.CapabilityInfo{}, err
	}

	token, err := h.bearer()
	if err != nil {
		return models.CapabilityInfo{}, err
	}

	var info models.CapabilityInfo
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", token).
		SetPathParam("capability", capability).
		SetResult(&info).
		Get("/api/capabilities/{capability}")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.CapabilityInfo{}, ctxErr
		}
		return models.CapabilityInfo{}, fmt.Errorf("get capability request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CapabilityInfo{}, fmt.Errorf("get capability %s: %w", capability, err)
	}

	info.Name = capability
	return info, nil
}

// ConnectedNodes returns the companion nodes announced on the open stream.
// Without a stream no node is connected.
func (h *HTTPTransport) ConnectedNodes(ctx context.Context) ([]models.Node, error) {
	if err := h.ready(ctx); err != nil {
		return nil, err
	}

	h.mu.RLock()
	nodes := slices.Clone(h.peers)
	h.mu.RUnlock()
	if nodes == nil {
		nodes = []models.Node{}
	}
	return nodes, nil
}

func (h *HTTPTransport) AddListener(l MessageListener) {
	h.mu.Lock()
	h.msgListeners = append(h.msgListeners, l)
	h.mu.Unlock()
}

func (h *HTTPTransport) RemoveListener(l MessageListener) {
	h.mu.Lock()
	h.msgListeners = slices.DeleteFunc(h.msgListeners, func(x MessageListener) bool { return x == l })
	h.mu.Unlock()
}

func (h *HTTPTransport) AddCapabilityListener(l CapabilityListener, capability string) {
	h.mu.Lock()
	h.capListeners[capability] = append(h.capListeners[capability], l)
	h.mu.Unlock()
}

func (h *HTTPTransport) RemoveCapabilityListener(l CapabilityListener, capability string) {
	h.mu.Lock()
	h.capListeners[capability] = slices.DeleteFunc(h.capListeners[capability], func(x CapabilityListener) bool { return x == l })
	h.mu.Unlock()
}

func (h *HTTPTransport) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-h.closed:
		return ErrTransportClosed
	default:
		return nil
	}
}

func (h *HTTPTransport) bearer() (string, error) {
	token, err := utils.GenerateNodeToken(h.node, h.tokenTTL, h.tokenKey)
	if err != nil {
		return "", fmt.Errorf("generate node token: %w", err)
	}
	return "Bearer " + token.SignedString, nil
}

func (h *HTTPTransport) streamURL() string {
	u := h.baseURL + "/api/ws"
	switch {
	case strings.HasPrefix(u, "https://"):
		return "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		return "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u
}

func (h *HTTPTransport) streamLoop(ctx context.Context) {
	defer h.wg.Done()

	delay := h.reconnectDelay
	if delay <= 0 {
		delay = time.Second
	}

	for {
		err := h.stream(ctx)
		if ctx.Err() != nil {
			return
		}
		h.logger.Warn().
			Str("func", "HTTPTransport.streamLoop").
			Err(err).
			Dur("retry_in", delay).
			Msg("companion stream disconnected")

		h.notifyDisconnected()

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

// stream dials the companion once and dispatches frames until the
// connection fails.
func (h *HTTPTransport) stream(ctx context.Context) error {
	token, err := h.bearer()
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Set("Authorization", token)

	conn, _, err := websocket.Dial(ctx, h.streamURL(), &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		return fmt.Errorf("dial companion stream: %w", err)
	}
	defer conn.CloseNow()

	h.logger.Info().Str("func", "HTTPTransport.stream").Msg("companion stream connected")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				_ = conn.Close(websocket.StatusNormalClosure, "")
			}
			return fmt.Errorf("read companion stream: %w", err)
		}

		var frame models.StreamFrame
		if err = json.Unmarshal(data, &frame); err != nil {
			h.logger.Warn().Str("func", "HTTPTransport.stream").Err(err).Msg("skipping malformed frame")
			continue
		}
		h.dispatch(frame)
	}
}

func (h *HTTPTransport) dispatch(frame models.StreamFrame) {
	switch frame.Type {
	case models.FrameTypeMessage:
		if frame.Message == nil {
			return
		}
		h.mu.RLock()
		listeners := slices.Clone(h.msgListeners)
		h.mu.RUnlock()
		for _, l := range listeners {
			l.OnMessageReceived(*frame.Message)
		}
	case models.FrameTypeCapability:
		if frame.Capability == nil {
			return
		}
		if frame.Capability.Name == models.CapabilityCompanionApp {
			peers := slices.Clone(frame.Capability.Nodes)
			sortNodes(peers)
			h.mu.Lock()
			h.peers = peers
			h.mu.Unlock()
		}
		h.notifyCapability(*frame.Capability)
	default:
		h.logger.Debug().Str("func", "HTTPTransport.dispatch").Str("type", frame.Type).Msg("unknown frame type")
	}
}

// notifyDisconnected reports every watched capability as empty: without the
// stream no node is reachable.
func (h *HTTPTransport) notifyDisconnected() {
	h.mu.Lock()
	h.peers = nil
	h.mu.Unlock()

	h.mu.RLock()
	names := make([]string, 0, len(h.capListeners))
	for name, ls := range h.capListeners {
		if len(ls) > 0 {
			names = append(names, name)
		}
	}
	h.mu.RUnlock()

	for _, name := range names {
		h.notifyCapability(models.CapabilityInfo{Name: name})
	}
}

func (h *HTTPTransport) notifyCapability(info models.CapabilityInfo) {
	h.mu.RLock()
	listeners := slices.Clone(h.capListeners[info.Name])
	h.mu.RUnlock()

	for _, l := range listeners {
		l.OnCapabilityChanged(info)
	}
}
