package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// testBuilder returns a builder that does not read the test binary's own
// command line.
func testBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := testBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := testBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that mergo only fills fields that are
// still zero, so earlier sources take precedence.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{NodeID: "from-env"}},
		&StructuredConfig{App: App{NodeID: "from-flags", NodeName: "Watch"}},
		&StructuredConfig{Sync: Sync{ResponseTimeout: 3 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.NodeID)
	assert.Equal(t, "Watch", cfg.App.NodeName)
	assert.Equal(t, 3*time.Second, cfg.Sync.ResponseTimeout)
}

func TestBuild_RejectsFallbackLevelOutOfRange(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{Battery: Battery{FallbackLevel: 101}})

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidBatteryConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := testBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_NODE_ID", "env-node")

	b := testBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-node", b.configs[0].App.NodeID)
}

func TestWithEnv_SetsErrorOnBadDuration(t *testing.T) {
	t.Setenv("SYNC_RESPONSE_TIMEOUT", "soon")

	b := testBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := testBuilder()
	assert.Same(t, b, b.withFlags())
}

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := testBuilder("-node-id", "flag-node", "-phone", "10.0.0.2:8080")
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-node", b.configs[0].App.NodeID)
	assert.Equal(t, "10.0.0.2:8080", b.configs[0].Adapter.PhoneAddress)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := testBuilder("-nope")
	b.withFlags()

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Sync.ResponseTimeout = Duration(7 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 7*time.Second, b.configs[1].Sync.ResponseTimeout)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the env-provided path beats the
// flag-provided one, matching the merge precedence.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestPipeline_EnvFlagsJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.NodeName = "json-name"
	payload.App.NodeID = "json-node"
	payload.Adapter.PhoneAddress = "json-phone:1"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("CONFIG", path)
	t.Setenv("APP_NODE_ID", "env-node")

	cfg, err := testBuilder("-phone", "flag-phone:2").
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-node", cfg.App.NodeID)
	assert.Equal(t, "flag-phone:2", cfg.Adapter.PhoneAddress)
	assert.Equal(t, "json-name", cfg.App.NodeName)
}
