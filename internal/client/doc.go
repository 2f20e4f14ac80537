// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wearable application runtime.
//
// It wires the companion connection, the battery sync services, their
// background workers and the terminal UI into a single process lifecycle.
package client
