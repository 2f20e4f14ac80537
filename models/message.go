// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Message paths exchanged between the wearable and the phone.
const (
	// PathBatterySyncQueryStatus is sent wearable->phone with one byte (0/1)
	// to query or propose the battery sync state.
	PathBatterySyncQueryStatus = "/batterySync/queryStatus"

	// PathBatterySyncActivated is sent phone->wearable with one byte (0/1)
	// carrying the authoritative battery sync state.
	PathBatterySyncActivated = "/batterySync/syncActivated"

	// PathBatteryLevel is sent phone->wearable with one byte holding the
	// phone battery percentage (0..100).
	PathBatteryLevel = "/batterySync/batteryLevel"

	// PathPremiumStatus is sent phone->wearable with one byte (0/1) telling
	// whether the user unlocked premium features.
	PathPremiumStatus = "/premium/status"

	// PathNotificationsSyncStatus is sent phone->wearable with one byte
	// holding a [NotificationsSyncStatus].
	PathNotificationsSyncStatus = "/notificationsSync/syncStatus"
)

var (
	// ErrEmptyPayload is returned when a message that must carry at least one
	// byte arrives without data.
	ErrEmptyPayload = errors.New("empty message payload")

	// ErrInvalidBatteryLevel is returned when a battery level outside 0..100
	// is encoded or decoded.
	ErrInvalidBatteryLevel = errors.New("invalid battery level")

	// ErrInvalidNotificationsSyncStatus is returned for a notifications sync
	// status byte outside 0..2.
	ErrInvalidNotificationsSyncStatus = errors.New("invalid notifications sync status")
)

// Message is a single datagram delivered by the transport.
type Message struct {
	// SourceNodeID is the transport identifier of the sender.
	SourceNodeID string `json:"source_node_id"`

	// Path identifies the meaning of the message.
	Path string `json:"path"`

	// Data is the raw payload.
	Data []byte `json:"data"`
}

// EncodeBool encodes b as a single byte: 1 for true, 0 for false.
func EncodeBool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeBool reads the first byte of data. A value of 1 is true, any other
// value is false. An empty payload is an error.
func DecodeBool(data []byte) (bool, error) {
	if len(data) == 0 {
		return false, ErrEmptyPayload
	}
	return data[0] == 1, nil
}

// EncodeBatteryLevel encodes a battery percentage as a single byte.
func EncodeBatteryLevel(percentage int) ([]byte, error) {
	if percentage < 0 || percentage > 100 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatteryLevel, percentage)
	}
	return []byte{byte(percentage)}, nil
}

// DecodeBatteryLevel reads a battery percentage from the first byte of data.
func DecodeBatteryLevel(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyPayload
	}
	level := int(data[0])
	if level > 100 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBatteryLevel, level)
	}
	return level, nil
}

// NotificationsSyncStatus is the phone-side state of notification mirroring.
type NotificationsSyncStatus uint8

const (
	NotificationsSyncDeactivated NotificationsSyncStatus = iota
	NotificationsSyncActivated
	// NotificationsSyncActivatedMissingPermission means the user enabled the
	// sync but the phone cannot read notifications.
	NotificationsSyncActivatedMissingPermission
)

func (s NotificationsSyncStatus) String() string {
	switch s {
	case NotificationsSyncDeactivated:
		return "deactivated"
	case NotificationsSyncActivated:
		return "activated"
	case NotificationsSyncActivatedMissingPermission:
		return "activated_missing_permission"
	}
	return fmt.Sprintf("notifications_sync_status(%d)", uint8(s))
}

// EncodeNotificationsSyncStatus encodes status as a single byte.
func EncodeNotificationsSyncStatus(status NotificationsSyncStatus) ([]byte, error) {
	if status > NotificationsSyncActivatedMissingPermission {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNotificationsSyncStatus, uint8(status))
	}
	return []byte{byte(status)}, nil
}

// DecodeNotificationsSyncStatus reads a status from the first byte of data.
func DecodeNotificationsSyncStatus(data []byte) (NotificationsSyncStatus, error) {
	if len(data) == 0 {
		return 0, ErrEmptyPayload
	}
	status := NotificationsSyncStatus(data[0])
	if status > NotificationsSyncActivatedMissingPermission {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNotificationsSyncStatus, data[0])
	}
	return status, nil
}
