// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Frame types carried over the companion websocket stream.
const (
	FrameTypeMessage    = "message"
	FrameTypeCapability = "capability"
)

// SendMessageRequest is the body of POST /api/messages.
type SendMessageRequest struct {
	// TargetNodeID is the node the message is addressed to.
	TargetNodeID string `json:"target_node_id"`

	// Message is the datagram itself. SourceNodeID must match the
	// authenticated node.
	Message Message `json:"message"`
}

// StreamFrame is one websocket frame pushed by the phone to a wearable.
type StreamFrame struct {
	// Type is either [FrameTypeMessage] or [FrameTypeCapability].
	Type string `json:"type"`

	// Message is set for message frames.
	Message *Message `json:"message,omitempty"`

	// Capability is set for capability frames.
	Capability *CapabilityInfo `json:"capability,omitempty"`
}

// WearableStatus is the phone's view of the paired wearable.
type WearableStatus string

const (
	// WearableAvailableAppInstalled means a wearable running the watch face
	// is connected.
	WearableAvailableAppInstalled WearableStatus = "available_app_installed"

	// WearableAvailableAppNotInstalled means a wearable is connected but does
	// not advertise the watch face.
	WearableAvailableAppNotInstalled WearableStatus = "available_app_not_installed"

	// WearableNotAvailable means no wearable with the watch face is connected.
	WearableNotAvailable WearableStatus = "not_available"
)
