package setup

import (
	"log/slog"
	"time"

	"github.com/bornholm/readings/internal/build"
	"github.com/bornholm/readings/internal/config"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

const sentryFlushTimeout = 2 * time.Second

// InitSentryFromConfig initializes error reporting when a DSN is configured.
// The returned function flushes buffered events and must be called before exit.
func InitSentryFromConfig(conf *config.Config) (func(), error) {
	if conf.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.Sentry.DSN,
		Environment: conf.Sentry.Environment,
		Release:     build.ProjectVersion,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize sentry")
	}

	slog.Info("sentry error reporting enabled", slog.String("environment", conf.Sentry.Environment))

	return func() {
		sentry.Flush(sentryFlushTimeout)
	}, nil
}
