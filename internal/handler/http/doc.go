// Package http implements the companion's HTTP API.
//
// Wearables reach the phone through three authenticated routes: a signed
// message endpoint, a capability lookup and a websocket stream. Loopback-only
// operator routes let the phone push its battery-sync preference and battery
// level. Tracing, access logging, compression, node authentication and body
// integrity checks are handled by middleware in this package.
package http
