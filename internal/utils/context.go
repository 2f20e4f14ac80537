// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HMAC hashing,
// pairing key derivation, HTTP response writing, HTTP client initialization,
// and node token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/watchface-sync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// NodeCtxKey is the key used to store the authenticated [models.Node] in the
// request context.
var NodeCtxKey = contextKey("node")

// WithNode returns a copy of ctx carrying node.
func WithNode(ctx context.Context, node models.Node) context.Context {
	return context.WithValue(ctx, NodeCtxKey, node)
}

// GetNodeFromContext retrieves the authenticated node from the context.
//
// Returns the node and an ok flag:
//   - ok == true : value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetNodeFromContext(ctx context.Context) (models.Node, bool) {
	node, ok := ctx.Value(NodeCtxKey).(models.Node)
	return node, ok
}
