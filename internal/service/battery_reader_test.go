package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSupply(t *testing.T, root, name, kind, capacity string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "type"), []byte(kind+"\n"), 0o644))
	if capacity != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "capacity"), []byte(capacity+"\n"), 0o644))
	}
}

func TestSysfsBatteryReader_ReadsBatteryCapacity(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "AC", "Mains", "")
	writeSupply(t, root, "BAT0", "Battery", "87")

	r := NewSysfsBatteryReader(config.Battery{SysfsRoot: root, FallbackLevel: 100}, logger.Nop())
	level, err := r.ReadLevel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 87, level)
}

func TestSysfsBatteryReader_FirstBatteryByName(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT1", "Battery", "20")
	writeSupply(t, root, "BAT0", "Battery", "55")

	r := NewSysfsBatteryReader(config.Battery{SysfsRoot: root}, logger.Nop())
	level, err := r.ReadLevel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 55, level)
}

func TestSysfsBatteryReader_ClampsOutOfRange(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT0", "Battery", "104")

	r := NewSysfsBatteryReader(config.Battery{SysfsRoot: root}, logger.Nop())
	level, err := r.ReadLevel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 100, level)
}

func TestSysfsBatteryReader_NoBattery_UsesFallback(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "AC", "Mains", "")
	writeSupply(t, root, "BAT0", "Battery", "garbage")

	r := NewSysfsBatteryReader(config.Battery{SysfsRoot: root, FallbackLevel: 42}, logger.Nop())
	level, err := r.ReadLevel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, level)
}

func TestSysfsBatteryReader_InvalidFallback(t *testing.T) {
	r := NewSysfsBatteryReader(config.Battery{SysfsRoot: filepath.Join(t.TempDir(), "missing"), FallbackLevel: -1}, logger.Nop())

	_, err := r.ReadLevel(context.Background())

	require.ErrorIs(t, err, ErrNoBatteryFound)
}

func TestNewSysfsBatteryReader_DefaultRoot(t *testing.T) {
	r := NewSysfsBatteryReader(config.Battery{}, logger.Nop()).(*sysfsBatteryReader)

	assert.Equal(t, config.DefaultSysfsRoot, r.root)
}
