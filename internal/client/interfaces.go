// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
	// Close releases everything the application holds.
	Close() error
}

// Connector is the wearable's link to its companion.
type Connector interface {
	Start(ctx context.Context)
	Close() error
}

// UI is the foreground part of the application. Run returns when the user
// quits.
type UI interface {
	Run(ctx context.Context) error
}
