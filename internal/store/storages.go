package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
)

// Storages groups the storage layer of one binary.
type Storages struct {
	// PreferenceRepository is the raw key/value table.
	PreferenceRepository PreferenceRepository
	// Preferences is the typed facade over PreferenceRepository.
	Preferences *Preferences

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens SQLite or PostgreSQL depending on cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the preference repository and its typed facade.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	repo := NewPreferenceRepository(db, logger)
	return &Storages{
		PreferenceRepository: repo,
		Preferences:          NewPreferences(repo),
		db:                   db,
	}, nil
}

// Close closes the underlying database.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
