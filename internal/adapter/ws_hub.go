package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/coder/websocket"
)

// DefaultHubInboxSize is the inbound queue length of a [WSHub].
const DefaultHubInboxSize = 64

const hubWriteTimeout = 5 * time.Second

// WSHub is the phone side of the companion transport. Wearables connect to
// it with a websocket stream; messages they POST are handed to [WSHub.Deliver].
//
// Wearables list what they advertise in the "capability" query parameter of
// the stream request. A stream opened without the parameter advertises
// [models.CapabilityWatchFaceApp].
type WSHub struct {
	node       models.Node
	advertised []string

	mu           sync.RWMutex
	conns        map[string]*hubConn
	msgListeners []MessageListener
	capListeners map[string][]CapabilityListener

	in        chan models.Message
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	logger *logger.Logger
}

type hubConn struct {
	node         models.Node
	capabilities []string
	conn         *websocket.Conn

	// coder/websocket allows one concurrent writer per connection
	writeMu sync.Mutex
}

func (c *hubConn) writeFrame(ctx context.Context, frame models.StreamFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.Write(ctx, websocket.MessageText, data)
}

var _ Transport = (*WSHub)(nil)

// NewWSHub returns a hub speaking for node and advertising capabilities to
// connected wearables.
func NewWSHub(node models.Node, logger *logger.Logger, capabilities ...string) *WSHub {
	h := &WSHub{
		node:         node,
		advertised:   capabilities,
		conns:        make(map[string]*hubConn),
		capListeners: make(map[string][]CapabilityListener),
		in:           make(chan models.Message, DefaultHubInboxSize),
		closed:       make(chan struct{}),
		logger:       logger.WithComponent("ws_hub"),
	}

	h.wg.Add(1)
	go h.deliverLoop()

	return h
}

// LocalNode returns the phone node.
func (h *WSHub) LocalNode() models.Node { return h.node }

// Advertised returns the local node as the only member of capability if the
// hub advertises it, and an empty set otherwise.
func (h *WSHub) Advertised(capability string) models.CapabilityInfo {
	info := models.CapabilityInfo{Name: capability, Nodes: []models.Node{}}
	if slices.Contains(h.advertised, capability) {
		info.Nodes = append(info.Nodes, h.node)
	}
	return info
}

// Connected reports whether a wearable with nodeID holds an open stream.
func (h *WSHub) Connected(nodeID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.conns[nodeID]
	return ok
}

// ServeStream upgrades the request to a websocket stream for node and blocks
// until the stream ends. A second stream for the same node replaces the
// first one.
func (h *WSHub) ServeStream(w http.ResponseWriter, r *http.Request, node models.Node) error {
	select {
	case <-h.closed:
		return ErrTransportClosed
	default:
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return fmt.Errorf("accept stream: %w", err)
	}

	node.Nearby = true
	c := &hubConn{node: node, capabilities: streamCapabilities(r), conn: conn}
	h.register(c)
	defer h.unregister(c)

	ctx := r.Context()
	for _, capability := range h.advertised {
		info := h.Advertised(capability)
		if err = h.writeWithTimeout(ctx, c, models.StreamFrame{Type: models.FrameTypeCapability, Capability: &info}); err != nil {
			return fmt.Errorf("write capability frame: %w", err)
		}
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read stream: %w", err)
		}

		var frame models.StreamFrame
		if err = json.Unmarshal(data, &frame); err != nil || frame.Type != models.FrameTypeMessage || frame.Message == nil {
			h.logger.Warn().Str("func", "WSHub.ServeStream").Str("node_id", node.ID).Msg("skipping unexpected frame")
			continue
		}

		msg := *frame.Message
		msg.SourceNodeID = node.ID
		if err = h.Deliver(msg); err != nil {
			h.logger.Warn().Str("func", "WSHub.ServeStream").Err(err).Msg("dropping inbound message")
		}
	}
}

func streamCapabilities(r *http.Request) []string {
	values, ok := r.URL.Query()["capability"]
	if !ok {
		return []string{models.CapabilityWatchFaceApp}
	}
	return slices.DeleteFunc(slices.Clone(values), func(v string) bool { return v == "" })
}

func (h *WSHub) register(c *hubConn) {
	h.mu.Lock()
	old := h.conns[c.node.ID]
	h.conns[c.node.ID] = c
	h.mu.Unlock()

	if old != nil {
		_ = old.conn.Close(websocket.StatusGoingAway, "replaced by a new stream")
	}

	h.logger.Info().Str("func", "WSHub.register").Str("node_id", c.node.ID).Msg("wearable connected")
	h.notifyCapability(models.CapabilityWatchFaceApp)
}

func (h *WSHub) unregister(c *hubConn) {
	h.mu.Lock()
	removed := h.conns[c.node.ID] == c
	if removed {
		delete(h.conns, c.node.ID)
	}
	h.mu.Unlock()

	_ = c.conn.Close(websocket.StatusNormalClosure, "")

	if removed {
		h.logger.Info().Str("func", "WSHub.unregister").Str("node_id", c.node.ID).Msg("wearable disconnected")
		h.notifyCapability(models.CapabilityWatchFaceApp)
	}
}

// Deliver queues msg for the hub's message listeners. It fails with
// [ErrInboxFull] when the queue is full.
func (h *WSHub) Deliver(msg models.Message) error {
	select {
	case <-h.closed:
		return ErrTransportClosed
	default:
	}

	select {
	case h.in <- msg:
		return nil
	default:
		return ErrInboxFull
	}
}

// SendMessage pushes a message frame to the connected wearable nodeID.
func (h *WSHub) SendMessage(ctx context.Context, nodeID, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-h.closed:
		return ErrTransportClosed
	default:
	}

	h.mu.RLock()
	c, ok := h.conns[nodeID]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("send %s to %s: %w", path, nodeID, ErrNodeNotFound)
	}

	msg := models.Message{SourceNodeID: h.node.ID, Path: path, Data: data}
	if err := h.writeWithTimeout(ctx, c, models.StreamFrame{Type: models.FrameTypeMessage, Message: &msg}); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("send %s to %s: %w", path, nodeID, err)
	}
	return nil
}

func (h *WSHub) writeWithTimeout(ctx context.Context, c *hubConn, frame models.StreamFrame) error {
	ctx, cancel := context.WithTimeout(ctx, hubWriteTimeout)
	defer cancel()
	return c.writeFrame(ctx, frame)
}

// GetCapability returns the connected wearables advertising capability.
func (h *WSHub) GetCapability(ctx context.Context, capability string) (models.CapabilityInfo, error) {
	if err := ctx.Err(); err != nil {
		return models.CapabilityInfo{}, err
	}
	return h.capabilityInfo(capability), nil
}

func (h *WSHub) capabilityInfo(capability string) models.CapabilityInfo {
	info := models.CapabilityInfo{Name: capability, Nodes: []models.Node{}}

	h.mu.RLock()
	for _, c := range h.conns {
		if slices.Contains(c.capabilities, capability) {
			info.Nodes = append(info.Nodes, c.node)
		}
	}
	h.mu.RUnlock()

	sortNodes(info.Nodes)
	return info
}

// ConnectedNodes returns every wearable with an open stream.
func (h *WSHub) ConnectedNodes(ctx context.Context) ([]models.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case <-h.closed:
		return nil, ErrTransportClosed
	default:
	}

	h.mu.RLock()
	nodes := make([]models.Node, 0, len(h.conns))
	for _, c := range h.conns {
		nodes = append(nodes, c.node)
	}
	h.mu.RUnlock()

	sortNodes(nodes)
	return nodes, nil
}

func (h *WSHub) AddListener(l MessageListener) {
	h.mu.Lock()
	h.msgListeners = append(h.msgListeners, l)
	h.mu.Unlock()
}

func (h *WSHub) RemoveListener(l MessageListener) {
	h.mu.Lock()
	h.msgListeners = slices.DeleteFunc(h.msgListeners, func(x MessageListener) bool { return x == l })
	h.mu.Unlock()
}

func (h *WSHub) AddCapabilityListener(l CapabilityListener, capability string) {
	h.mu.Lock()
	h.capListeners[capability] = append(h.capListeners[capability], l)
	h.mu.Unlock()
}

func (h *WSHub) RemoveCapabilityListener(l CapabilityListener, capability string) {
	h.mu.Lock()
	h.capListeners[capability] = slices.DeleteFunc(h.capListeners[capability], func(x CapabilityListener) bool { return x == l })
	h.mu.Unlock()
}

func (h *WSHub) notifyCapability(capability string) {
	info := h.capabilityInfo(capability)

	h.mu.RLock()
	listeners := slices.Clone(h.capListeners[capability])
	h.mu.RUnlock()

	for _, l := range listeners {
		l.OnCapabilityChanged(info)
	}
}

// Close drops every stream and stops message delivery.
func (h *WSHub) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)

		h.mu.Lock()
		conns := make([]*hubConn, 0, len(h.conns))
		for _, c := range h.conns {
			conns = append(conns, c)
		}
		h.mu.Unlock()

		for _, c := range conns {
			_ = c.conn.Close(websocket.StatusGoingAway, "companion shutting down")
		}
	})
	h.wg.Wait()
	return nil
}

func (h *WSHub) deliverLoop() {
	defer h.wg.Done()
	for {
		select {
		case <-h.closed:
			return
		case msg := <-h.in:
			h.mu.RLock()
			listeners := slices.Clone(h.msgListeners)
			h.mu.RUnlock()

			for _, l := range listeners {
				l.OnMessageReceived(msg)
			}
		}
	}
}
