package store

import "errors"

// Sentinel errors returned by preference repository methods. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrPreferenceNotFound is returned when no value is stored under a key.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrInvalidPreferenceValue is returned when a stored value cannot be
	// decoded into the requested type.
	ErrInvalidPreferenceValue = errors.New("invalid preference value")

	// ErrPreferenceNotSaved is returned when an upsert affected no rows.
	ErrPreferenceNotSaved = errors.New("preference was not saved")
)
