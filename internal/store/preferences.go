package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Preference keys.
const (
	KeyBatterySyncActivated = "battery_sync_activated"
	KeyPhoneBatteryLevel    = "phone_battery_level"
)

// Preferences is the typed facade over [PreferenceRepository].
type Preferences struct {
	repo PreferenceRepository
}

// NewPreferences wraps repo.
func NewPreferences(repo PreferenceRepository) *Preferences {
	return &Preferences{repo: repo}
}

// BatterySync is the persisted battery sync flag. On the wearable it is the
// last value confirmed by the phone; on the phone it is the value last
// requested by the wearable.
func (p *Preferences) BatterySync() *BoolPreference {
	return &BoolPreference{repo: p.repo, key: KeyBatterySyncActivated}
}

// PhoneBatteryLevel is the last battery percentage reported by the phone.
func (p *Preferences) PhoneBatteryLevel() *IntPreference {
	return &IntPreference{repo: p.repo, key: KeyPhoneBatteryLevel}
}

// BoolPreference is a boolean value stored under a fixed key.
type BoolPreference struct {
	repo PreferenceRepository
	key  string
}

// Key returns the storage key.
func (b *BoolPreference) Key() string { return b.key }

// Get returns the stored value. A missing key reads as false.
func (b *BoolPreference) Get(ctx context.Context) (bool, error) {
	raw, err := b.repo.Get(ctx, b.key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidPreferenceValue, b.key, raw)
	}
	return v, nil
}

// Set stores v.
func (b *BoolPreference) Set(ctx context.Context, v bool) error {
	return b.repo.Put(ctx, b.key, strconv.FormatBool(v))
}

// IntPreference is an integer value stored under a fixed key.
type IntPreference struct {
	repo PreferenceRepository
	key  string
}

// Key returns the storage key.
func (i *IntPreference) Key() string { return i.key }

// Get returns the stored value and whether one was stored at all.
func (i *IntPreference) Get(ctx context.Context) (int, bool, error) {
	raw, err := i.repo.Get(ctx, i.key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", ErrInvalidPreferenceValue, i.key, raw)
	}
	return v, true, nil
}

// Set stores v.
func (i *IntPreference) Set(ctx context.Context, v int) error {
	return i.repo.Put(ctx, i.key, strconv.Itoa(v))
}
