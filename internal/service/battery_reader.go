package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
)

const powerSupplyTypeBattery = "Battery"

type sysfsBatteryReader struct {
	root     string
	fallback int

	logger *logger.Logger
}

// NewSysfsBatteryReader reads the battery percentage from the Linux power
// supply class. When no battery is present the configured fallback level is
// reported.
func NewSysfsBatteryReader(cfg config.Battery, logger *logger.Logger) BatteryReader {
	root := cfg.SysfsRoot
	if root == "" {
		root = config.DefaultSysfsRoot
	}
	return &sysfsBatteryReader{root: root, fallback: cfg.FallbackLevel, logger: logger}
}

func (r *sysfsBatteryReader) ReadLevel(ctx context.Context) (int, error) {
	level, err := r.readSysfs()
	if err == nil {
		return level, nil
	}

	r.logger.Debug().Err(err).Str("func", "sysfsBatteryReader.ReadLevel").Int("fallback", r.fallback).Msg("using fallback battery level")
	if r.fallback < 0 || r.fallback > 100 {
		return 0, fmt.Errorf("%w: fallback level %d out of range", ErrNoBatteryFound, r.fallback)
	}
	return r.fallback, nil
}

// readSysfs returns the capacity of the first supply (by name) whose type is
// Battery.
func (r *sysfsBatteryReader) readSysfs() (int, error) {
	supplies, err := filepath.Glob(filepath.Join(r.root, "*"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoBatteryFound, err)
	}
	sort.Strings(supplies)

	for _, supply := range supplies {
		kind, err := readTrimmed(filepath.Join(supply, "type"))
		if err != nil || kind != powerSupplyTypeBattery {
			continue
		}

		raw, err := readTrimmed(filepath.Join(supply, "capacity"))
		if err != nil {
			continue
		}
		level, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		return min(max(level, 0), 100), nil
	}
	return 0, ErrNoBatteryFound
}

func readTrimmed(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
