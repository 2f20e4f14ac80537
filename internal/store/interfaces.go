package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PreferenceRepository is the low-level key/value preference table.
type PreferenceRepository interface {
	// Get returns the raw value stored under key or [ErrPreferenceNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Put inserts or replaces the value stored under key.
	Put(ctx context.Context, key, value string) error
}
