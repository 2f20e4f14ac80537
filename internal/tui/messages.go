package tui

import (
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/models"
)

type stateMsg struct {
	state models.SyncState
}

type errorEventMsg struct {
	event models.ErrorEvent
}

type batteryMsg struct {
	battery service.PhoneBattery
}

type preferenceMsg struct {
	value bool
	err   error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

// subscriptionClosedMsg is returned once a service closed one of its streams.
type subscriptionClosedMsg struct{}
