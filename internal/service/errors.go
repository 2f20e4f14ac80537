package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoWearableConnected = errors.New("no wearable connected")
	ErrServiceClosed       = errors.New("service is closed")
	ErrNoBatteryFound      = errors.New("no battery found")
)
