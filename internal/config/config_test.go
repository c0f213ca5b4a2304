// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 60, cfg.API.TimeoutSecs)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromPath_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1.0.0"

[api]
base_url = "https://api.example.org"
timeout_secs = 30

[ui]
theme = "light"
language = "en"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSecs)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "en", cfg.UI.Language)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"api":{"base_url":"http://backend:9000"},"ui":{"theme":"auto"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.API.BaseURL)
	assert.Equal(t, "auto", cfg.UI.Theme)
	// Untouched fields keep defaults.
	assert.Equal(t, 60, cfg.API.TimeoutSecs)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromPath_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[ui]
compact_mode = true
`), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.True(t, cfg.UI.CompactMode)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[api]
base_url = "http://file-wins:8000"
`), 0600))

	t.Setenv("MINTELLIGENT_API_URL", "http://env-wins:8000")
	t.Setenv("MINTELLIGENT_LANG", "en")
	t.Setenv("MINTELLIGENT_LOG_LEVEL", "warn")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env-wins:8000", cfg.API.BaseURL)
	assert.Equal(t, "en", cfg.UI.Language)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"relative url", func(c *Config) { c.API.BaseURL = "backend:8000" }, "api.base_url"},
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://x.example" }, "api.base_url"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }, "ui.theme"},
		{"unknown language", func(c *Config) { c.UI.Language = "fr" }, "ui.language"},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.API.BaseURL = "https://api.example.org"
	cfg.UI.Language = "de"
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	again, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.API.BaseURL, again.API.BaseURL)
	assert.Equal(t, cfg.UI.Language, again.UI.Language)
}

func TestSaveJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.UI.CompactMode = true
	require.NoError(t, SaveJSON(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.UI.CompactMode)
}

func TestDerivedPaths(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/tmp/mint-test"

	sp, err := cfg.SessionPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/mint-test", "session.json"), sp)

	lp, err := cfg.LanguagePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/mint-test", "language.json"), lp)

	logp, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/mint-test", "mintelligent.log"), logp)

	cfg.Logging.File = "/var/log/mint.log"
	logp, err = cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/mint.log", logp)
}

func TestConfigDir_EnvOverride(t *testing.T) {
	t.Setenv("MINTELLIGENT_DATA_DIR", "/tmp/custom-dir")
	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-dir", dir)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := SetupLoggerWithWriters(&file, &stderr, slog.LevelInfo)

	logger.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry), "file output is JSON")
	assert.Equal(t, "hello", entry["msg"])
	assert.Contains(t, stderr.String(), "hello", "stderr output is text")
}

func TestWatcher_DeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[api]
base_url = "http://one:8000"
`), 0600))

	w, err := NewWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch())

	require.NoError(t, os.WriteFile(path, []byte(`[api]
base_url = "http://two:8000"
`), 0600))

	select {
	case cfg := <-w.Changes():
		assert.Equal(t, "http://two:8000", cfg.API.BaseURL)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcher_InvalidEditDropped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[api]
base_url = "http://one:8000"
`), 0600))

	w, err := NewWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch())

	require.NoError(t, os.WriteFile(path, []byte(`theme = not even toml [`), 0600))

	select {
	case cfg := <-w.Changes():
		t.Fatalf("broken config must not be delivered, got %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}
