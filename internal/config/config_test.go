package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cloudeng.io/logging/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(home, "absent.yaml"), home, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".mindplan", "mindplan.db"), cfg.DBPath)
	assert.True(t, cfg.ExcludeWeekends)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exclude_weekends: false\nhistory_limit: 20\nlog_format: json\n"), 0o644))

	cfg, err := LoadFrom(path, home, envMap(nil))
	require.NoError(t, err)
	assert.False(t, cfg.ExcludeWeekends)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep defaults")

	cfg, err = LoadFrom(path, home, envMap(map[string]string{
		"MINDPLAN_EXCLUDE_WEEKENDS": "true",
		"MINDPLAN_DB":               "/tmp/x.db",
		"MINDPLAN_LOG":              "debug",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.ExcludeWeekends)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFrom_Errors(t *testing.T) {
	home := t.TempDir()
	bad := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("history_limit: [oops"), 0o644))
	_, err := LoadFrom(bad, home, envMap(nil))
	assert.ErrorContains(t, err, "parsing")

	absent := filepath.Join(home, "absent.yaml")
	_, err = LoadFrom(absent, home, envMap(map[string]string{"MINDPLAN_EXCLUDE_WEEKENDS": "sometimes"}))
	assert.ErrorContains(t, err, "MINDPLAN_EXCLUDE_WEEKENDS")

	_, err = LoadFrom(absent, home, envMap(map[string]string{"MINDPLAN_LOG": "chatty"}))
	assert.ErrorContains(t, err, "unknown log level")

	_, err = LoadFrom(absent, home, envMap(map[string]string{"MINDPLAN_LOG_FORMAT": "xml"}))
	assert.ErrorContains(t, err, "log_format")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig(t.TempDir())
	cfg.LogFormat = "json"

	ctx, err := cfg.LoggerContext(context.Background(), &buf, "info")
	require.NoError(t, err)
	ctxlog.Logger(ctx).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	ctx, err = cfg.LoggerContext(context.Background(), &buf, "")
	require.NoError(t, err)
	ctxlog.Logger(ctx).Info("dropped below warn")
	assert.Empty(t, buf.String())
}
