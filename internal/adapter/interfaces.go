// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the short-range transport between a wearable and
// its paired phone.
//
// The transport is asynchronous, at-most-once and unordered: a successful
// [MessageClient.SendMessage] only means the message left this node. Nodes
// are addressed by ID and discovered through capabilities.
//
// Implementations:
//   - [MemSwitch] / [MemTransport]: in-process switch used by tests and demos.
//   - [HTTPTransport]: wearable side; REST for sends and discovery, a
//     websocket stream for inbound messages and capability changes.
//   - [WSHub]: phone side; accepts wearable websocket streams and delivers
//     messages posted to the companion HTTP API.
//
// Transport-level failures are mapped to the sentinel errors in errors.go so
// callers can use [errors.Is] regardless of the implementation.
package adapter

import (
	"context"

	"github.com/MKhiriev/watchface-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// MessageListener receives messages delivered to this node. Listeners are
// compared by identity, so the same value must be passed to RemoveListener.
type MessageListener interface {
	// OnMessageReceived is called from a transport goroutine and must not
	// block for long.
	OnMessageReceived(msg models.Message)
}

// CapabilityListener receives capability change notifications.
type CapabilityListener interface {
	// OnCapabilityChanged is called with the full set of nodes currently
	// advertising the capability.
	OnCapabilityChanged(info models.CapabilityInfo)
}

// MessageClient sends and receives datagrams addressed by node ID.
type MessageClient interface {
	// SendMessage sends data on path to nodeID. It returns once the message
	// has been handed to the transport; delivery is not acknowledged.
	// Returns a wrapped [ErrNodeNotFound] when the node is unknown and the
	// context error when ctx is cancelled.
	SendMessage(ctx context.Context, nodeID, path string, data []byte) error

	// AddListener registers l for every message delivered to this node.
	AddListener(l MessageListener)

	// RemoveListener unregisters l. Unknown listeners are ignored.
	RemoveListener(l MessageListener)
}

// CapabilityClient discovers nodes by advertised capability.
type CapabilityClient interface {
	// GetCapability returns the nodes currently advertising capability.
	GetCapability(ctx context.Context, capability string) (models.CapabilityInfo, error)

	// AddCapabilityListener registers l for changes of capability.
	AddCapabilityListener(l CapabilityListener, capability string)

	// RemoveCapabilityListener unregisters l for capability.
	RemoveCapabilityListener(l CapabilityListener, capability string)
}

// NodeClient lists the nodes reachable from this node, whatever they
// advertise.
type NodeClient interface {
	// ConnectedNodes returns every connected node except the local one,
	// ordered by ID.
	ConnectedNodes(ctx context.Context) ([]models.Node, error)
}

// Transport is the full node-to-node transport surface.
type Transport interface {
	MessageClient
	CapabilityClient
	NodeClient

	// LocalNode returns the node this transport speaks for.
	LocalNode() models.Node

	// Close releases the transport. Pending sends fail with [ErrTransportClosed].
	Close() error
}
