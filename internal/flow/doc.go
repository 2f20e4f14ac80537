// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flow provides the two observation primitives used between the sync
// state machine and its observers:
//
//   - [State] holds a single current value. New subscribers immediately
//     receive the current value; slow subscribers only ever see the latest
//     value (intermediate values are conflated, never replayed).
//   - [Events] is a fire-and-forget stream. An event is delivered only to the
//     subscribers registered at emission time and is dropped for a subscriber
//     whose buffer is full. Nothing is replayed to late subscribers.
package flow
