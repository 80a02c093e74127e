package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cloudeng.io/logging/ctxlog"
)

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// LoggerContext returns ctx carrying a logger built from the log settings.
// level overrides the configured level when non-empty.
func (c Config) LoggerContext(ctx context.Context, w io.Writer, level string) (context.Context, error) {
	if level == "" {
		level = c.LogLevel
	}
	l, err := ParseLevel(level)
	if err != nil {
		return ctx, err
	}
	opts := &slog.HandlerOptions{Level: l}
	if c.LogFormat == "json" {
		return ctxlog.NewJSONLogger(ctx, w, opts), nil
	}
	return ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(w, opts))), nil
}
