// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncChannel describes the pair of message paths used to agree on one
// boolean preference between the wearable and the phone.
type SyncChannel struct {
	// Name is a short label used in logs (e.g. "battery_sync").
	Name string

	// QueryPath carries the wearable's query/proposal.
	QueryPath string

	// AckPath carries the phone's authoritative acknowledgement.
	AckPath string
}

// BatterySyncChannel is the channel for the phone battery sync preference.
var BatterySyncChannel = SyncChannel{
	Name:      "battery_sync",
	QueryPath: PathBatterySyncQueryStatus,
	AckPath:   PathBatterySyncActivated,
}
