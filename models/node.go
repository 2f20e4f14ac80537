// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Node identifies a paired device reachable over the short-range transport.
// Values are supplied by the transport layer and are never mutated.
type Node struct {
	// ID is the stable transport identifier of the device.
	ID string `json:"id"`

	// DisplayName is the human-readable device name (e.g. "Pixel 8").
	DisplayName string `json:"display_name"`

	// Nearby reports whether the transport considers the node directly
	// connected (as opposed to reachable through a relay).
	Nearby bool `json:"nearby"`
}

// CapabilityInfo is the set of nodes currently advertising a capability.
type CapabilityInfo struct {
	// Name is the advertised capability (e.g. "watchface_companion_app").
	Name string `json:"name"`

	// Nodes lists every node currently advertising Name.
	Nodes []Node `json:"nodes"`
}

// Capabilities advertised over the transport.
const (
	// CapabilityCompanionApp is advertised by phones running the companion app.
	CapabilityCompanionApp = "watchface_companion_app"

	// CapabilityWatchFaceApp is advertised by wearables running the watch face.
	CapabilityWatchFaceApp = "watchface_app"
)
