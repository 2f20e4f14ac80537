package adapter

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/watchface-sync/models"
)

// DefaultMemInboxSize is the inbound queue length of a [MemTransport].
const DefaultMemInboxSize = 64

// DropFunc decides whether the switch silently loses a message on its way to
// the node with ID to. It is used to simulate an unreliable link.
type DropFunc func(to string, msg models.Message) bool

// MemSwitch delivers messages between in-process transports.
type MemSwitch struct {
	mu        sync.RWMutex
	nodes     map[string]*MemTransport
	drop      DropFunc
	inboxSize int
}

// NewMemSwitch returns an empty switch.
func NewMemSwitch() *MemSwitch {
	return &MemSwitch{
		nodes:     make(map[string]*MemTransport),
		inboxSize: DefaultMemInboxSize,
	}
}

// SetDropFunc installs fn as the loss policy. A nil fn delivers everything.
func (s *MemSwitch) SetDropFunc(fn DropFunc) {
	s.mu.Lock()
	s.drop = fn
	s.mu.Unlock()
}

// Join attaches node to the switch and advertises capabilities on its behalf.
func (s *MemSwitch) Join(node models.Node, capabilities ...string) (*MemTransport, error) {
	if node.ID == "" {
		return nil, fmt.Errorf("join: %w: empty node id", ErrBadRequest)
	}

	s.mu.Lock()
	if _, exists := s.nodes[node.ID]; exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("join: node %q already attached", node.ID)
	}

	t := &MemTransport{
		sw:           s,
		node:         node,
		capabilities: make(map[string]struct{}),
		in:           make(chan models.Message, s.inboxSize),
		closed:       make(chan struct{}),
		capListeners: make(map[string][]CapabilityListener),
	}
	for _, c := range capabilities {
		t.capabilities[c] = struct{}{}
	}
	s.nodes[node.ID] = t
	s.mu.Unlock()

	t.wg.Add(1)
	go t.deliverLoop()

	for _, c := range capabilities {
		s.notifyCapability(c, node.ID)
	}
	return t, nil
}

// capabilityInfo returns every node advertising capability except exclude.
func (s *MemSwitch) capabilityInfo(capability, exclude string) models.CapabilityInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := models.CapabilityInfo{Name: capability}
	for id, t := range s.nodes {
		if id == exclude {
			continue
		}
		if _, ok := t.capabilities[capability]; ok {
			info.Nodes = append(info.Nodes, t.node)
		}
	}
	sortNodes(info.Nodes)
	return info
}

// connectedNodes returns every attached node except exclude.
func (s *MemSwitch) connectedNodes(exclude string) []models.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]models.Node, 0, len(s.nodes))
	for id, t := range s.nodes {
		if id != exclude {
			nodes = append(nodes, t.node)
		}
	}
	sortNodes(nodes)
	return nodes
}

// notifyCapability pushes the current view of capability to every other node.
func (s *MemSwitch) notifyCapability(capability, changed string) {
	s.mu.RLock()
	peers := make([]*MemTransport, 0, len(s.nodes))
	for id, t := range s.nodes {
		if id != changed {
			peers = append(peers, t)
		}
	}
	s.mu.RUnlock()

	for _, p := range peers {
		p.notifyCapability(s.capabilityInfo(capability, p.node.ID))
	}
}

func (s *MemSwitch) leave(t *MemTransport) {
	s.mu.Lock()
	if s.nodes[t.node.ID] != t {
		s.mu.Unlock()
		return
	}
	delete(s.nodes, t.node.ID)
	caps := make([]string, 0, len(t.capabilities))
	for c := range t.capabilities {
		caps = append(caps, c)
	}
	s.mu.Unlock()

	for _, c := range caps {
		s.notifyCapability(c, t.node.ID)
	}
}

// MemTransport is a [Transport] attached to a [MemSwitch].
type MemTransport struct {
	sw   *MemSwitch
	node models.Node

	// guarded by sw.mu
	capabilities map[string]struct{}

	in        chan models.Message
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	mu           sync.RWMutex
	msgListeners []MessageListener
	capListeners map[string][]CapabilityListener
}

var _ Transport = (*MemTransport)(nil)

// LocalNode returns the node this transport was joined as.
func (t *MemTransport) LocalNode() models.Node { return t.node }

// Advertise starts advertising capability and notifies peers.
func (t *MemTransport) Advertise(capability string) {
	t.sw.mu.Lock()
	t.capabilities[capability] = struct{}{}
	t.sw.mu.Unlock()
	t.sw.notifyCapability(capability, t.node.ID)
}

// Withdraw stops advertising capability and notifies peers.
func (t *MemTransport) Withdraw(capability string) {
	t.sw.mu.Lock()
	delete(t.capabilities, capability)
	t.sw.mu.Unlock()
	t.sw.notifyCapability(capability, t.node.ID)
}

// SendMessage queues a message in the inbox of nodeID. It fails with
// [ErrInboxFull] instead of blocking when the inbox is full.
func (t *MemTransport) SendMessage(ctx context.Context, nodeID, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-t.closed:
		return ErrTransportClosed
	default:
	}

	t.sw.mu.RLock()
	dst, ok := t.sw.nodes[nodeID]
	drop := t.sw.drop
	t.sw.mu.RUnlock()
	if !ok {
		return fmt.Errorf("send %s to %s: %w", path, nodeID, ErrNodeNotFound)
	}

	msg := models.Message{
		SourceNodeID: t.node.ID,
		Path:         path,
		Data:         slices.Clone(data),
	}
	if drop != nil && drop(nodeID, msg) {
		return nil
	}

	select {
	case <-dst.closed:
		return fmt.Errorf("send %s to %s: %w", path, nodeID, ErrNodeNotFound)
	case dst.in <- msg:
		return nil
	default:
		return fmt.Errorf("send %s to %s: %w", path, nodeID, ErrInboxFull)
	}
}

func (t *MemTransport) AddListener(l MessageListener) {
	t.mu.Lock()
	t.msgListeners = append(t.msgListeners, l)
	t.mu.Unlock()
}

func (t *MemTransport) RemoveListener(l MessageListener) {
	t.mu.Lock()
	t.msgListeners = slices.DeleteFunc(t.msgListeners, func(x MessageListener) bool { return x == l })
	t.mu.Unlock()
}

// ConnectedNodes returns the other nodes attached to the switch.
func (t *MemTransport) ConnectedNodes(ctx context.Context) ([]models.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case <-t.closed:
		return nil, ErrTransportClosed
	default:
	}
	return t.sw.connectedNodes(t.node.ID), nil
}

// GetCapability returns the peers advertising capability.
func (t *MemTransport) GetCapability(ctx context.Context, capability string) (models.CapabilityInfo, error) {
	if err := ctx.Err(); err != nil {
		return models.CapabilityInfo{}, err
	}
	select {
	case <-t.closed:
		return models.CapabilityInfo{}, ErrTransportClosed
	default:
	}
	return t.sw.capabilityInfo(capability, t.node.ID), nil
}

func (t *MemTransport) AddCapabilityListener(l CapabilityListener, capability string) {
	t.mu.Lock()
	t.capListeners[capability] = append(t.capListeners[capability], l)
	t.mu.Unlock()
}

func (t *MemTransport) RemoveCapabilityListener(l CapabilityListener, capability string) {
	t.mu.Lock()
	t.capListeners[capability] = slices.DeleteFunc(t.capListeners[capability], func(x CapabilityListener) bool { return x == l })
	t.mu.Unlock()
}

// Close detaches the transport from the switch and stops delivery. Messages
// still queued are discarded.
func (t *MemTransport) Close() error {
	t.closeOnce.Do(func() {
		close(t.closed)
		t.sw.leave(t)
	})
	t.wg.Wait()
	return nil
}

func (t *MemTransport) notifyCapability(info models.CapabilityInfo) {
	t.mu.RLock()
	listeners := slices.Clone(t.capListeners[info.Name])
	t.mu.RUnlock()

	for _, l := range listeners {
		l.OnCapabilityChanged(info)
	}
}

func (t *MemTransport) deliverLoop() {
	defer t.wg.Done()
	for {
		select {
		case <-t.closed:
			return
		case msg := <-t.in:
			t.mu.RLock()
			listeners := slices.Clone(t.msgListeners)
			t.mu.RUnlock()

			for _, l := range listeners {
				l.OnMessageReceived(msg)
			}
		}
	}
}

func sortNodes(nodes []models.Node) {
	slices.SortFunc(nodes, func(a, b models.Node) int {
		return strings.Compare(a.ID, b.ID)
	})
}
