package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

type Options struct {
	Level string
	// Format is "json" or "text". Empty picks text in development and json otherwise.
	Format      string
	Development bool
	SentryDSN   string
	Environment string
}

// Init builds the process logger and installs it as the slog default.
// Errors are also forwarded to Sentry when a DSN is configured.
func Init(opts Options) *slog.Logger {
	return initWithWriter(os.Stdout, opts)
}

func initWithWriter(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: opts.Development,
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "json"
		if opts.Development {
			format = "text"
		}
	}

	handlers := []slog.Handler{}
	if format == "text" {
		handlers = append(handlers, slog.NewTextHandler(w, handlerOpts))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(w, handlerOpts))
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Environment,
		})
		if err != nil {
			slog.New(handlers[0]).Warn("sentry init failed, errors will not be reported", "error", err)
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}

// ParseLevel maps debug, warn and error (case-insensitive); anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
