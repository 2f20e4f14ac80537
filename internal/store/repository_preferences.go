// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/logger"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// preferenceRepository is the SQL implementation of [PreferenceRepository]
// over the "preferences" table.
type preferenceRepository struct {
	db     *DB
	logger *logger.Logger

	now func() time.Time
}

// NewPreferenceRepository constructs a [PreferenceRepository] backed by db.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	logger.Debug().Msg("creating preference repository")
	return &preferenceRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the raw value for key.
//
// Error handling:
//   - no row → [ErrPreferenceNotFound].
//   - retryable driver errors are retried up to three attempts.
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectPreferenceQuery(r.db.builder, key)
	if err != nil {
		return "", fmt.Errorf("build select preference query: %w", err)
	}

	var value string
	err = r.withRetry(ctx, "*preferenceRepository.Get", func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrPreferenceNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return value, nil
}

// Put upserts value under key and stamps updated_at.
func (r *preferenceRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertPreferenceQuery(r.db.builder, key, value, r.now().UTC())
	if err != nil {
		return fmt.Errorf("build upsert preference query: %w", err)
	}

	var affected int64
	err = r.withRetry(ctx, "*preferenceRepository.Put", func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrPreferenceNotSaved, key)
	}

	return nil
}

func (r *preferenceRepository) withRetry(ctx context.Context, fn string, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil || errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if r.db.errorClassificator == nil || r.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		r.logger.Warn().Str("func", fn).Err(err).Int("attempt", attempt).Msg("retryable database error")
		if attempt == maxAttempts {
			break
		}

		t := time.NewTimer(time.Duration(attempt) * retryBackoff)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return err
}
