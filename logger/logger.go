// Package logger builds the application's slog logger: coloured text via
// tint or JSON on stdout, optionally fanned out to Fluent Bit.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"
)

type Config struct {
	AppName string
	Level   string
	Format  string
	Writer  io.Writer

	Fluent FluentConfig
}

type FluentConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

// New returns the root logger and a closer for any network sinks.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	level := ParseLevel(cfg.Level)
	var stdout slog.Handler
	switch cfg.Format {
	case "json":
		stdout = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{Level: level})
	default:
		stdout = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	}

	handlers := []slog.Handler{stdout}
	var closer io.Closer = nopCloser{}

	if cfg.Fluent.Enabled {
		client, err := fluent.New(fluent.Config{
			FluentHost: cfg.Fluent.Host,
			FluentPort: cfg.Fluent.Port,
			TagPrefix:  cfg.AppName,
			Async:      true,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		handlers = append(handlers, NewFluentHandler(client, ParseLevel(cfg.Fluent.Level)))
		closer = client
	}

	var handler slog.Handler
	if len(handlers) == 1 {
		handler = handlers[0]
	} else {
		handler = NewMultiHandler(handlers...)
	}

	logger := slog.New(handler).With("service_name", cfg.AppName)
	return logger, closer, nil
}

func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type ctxKey struct{}

func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request logger, or slog.Default when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
