package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// Tests in this file use t.Setenv and therefore cannot run in parallel.

var keys = []string{"PATTERNS_LOG_LEVEL", "PATTERNS_LOG_FORMAT", "PATTERNS_HEADERS"}

// clearEnv unsets every PATTERNS_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// TestLoadFromEnv_Defaults verifies defaults when nothing is set.
func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoadFromEnv_Overrides verifies variables are read and normalized.
func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PATTERNS_LOG_LEVEL", "debug")
	t.Setenv("PATTERNS_LOG_FORMAT", " JSON ")
	t.Setenv("PATTERNS_HEADERS", "false")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", LogFormat: FormatJSON, Headers: false}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

// TestLoadFromEnv_Invalid verifies bad values are rejected.
func TestLoadFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		value   string
		wantSub string
	}{
		{name: "format", key: "PATTERNS_LOG_FORMAT", value: "xml", wantSub: "PATTERNS_LOG_FORMAT"},
		{name: "level", key: "PATTERNS_LOG_LEVEL", value: "loud", wantSub: "PATTERNS_LOG_LEVEL"},
		{name: "headers", key: "PATTERNS_HEADERS", value: "maybe", wantSub: "parse env"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}
