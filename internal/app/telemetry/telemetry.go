//go:generate mockgen -source=telemetry.go -destination=telemetry_mock.go -package=telemetry
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	"memeview/internal/app/errors"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

const flushTimeout = 2 * time.Second

// Reporter forwards non-fatal errors to an error tracker
type Reporter interface {
	Capture(err error, tags map[string]string)
	Breadcrumb(category, message string)
	Flush()
}

// NewReporter returns a sentry backed reporter when a DSN is configured, a no-op one otherwise
func NewReporter(cfg *config.Config, log logger.Logger) (Reporter, error) {
	if cfg.Telemetry.DSN == "" {
		log.Debug().Msg("Telemetry disabled")
		return NoOp(), nil
	}

	reporter, err := newSentryReporter(sentry.ClientOptions{
		Dsn:         cfg.Telemetry.DSN,
		Release:     config.AppName + "@" + config.Version,
		Environment: cfg.Telemetry.Environment,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Msg("Telemetry enabled")

	return reporter, nil
}

type sentryReporter struct {
	hub *sentry.Hub
}

func newSentryReporter(opts sentry.ClientOptions) (Reporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToInitSentry, err)
	}

	return &sentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Capture sends the error with the given tags
func (r *sentryReporter) Capture(err error, tags map[string]string) {
	if err == nil {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

// Breadcrumb records a navigation step attached to later events
func (r *sentryReporter) Breadcrumb(category, message string) {
	r.hub.AddBreadcrumb(&sentry.Breadcrumb{
		Category: category,
		Message:  message,
		Level:    sentry.LevelInfo,
	}, nil)
}

// Flush waits for queued events to be delivered
func (r *sentryReporter) Flush() {
	r.hub.Flush(flushTimeout)
}

// NoOp returns a reporter that drops everything
func NoOp() Reporter {
	return &noOpReporter{}
}

type noOpReporter struct{}

func (n *noOpReporter) Capture(err error, tags map[string]string) {}
func (n *noOpReporter) Breadcrumb(category, message string) {}
func (n *noOpReporter) Flush() {}

// Register flushes pending events when the application stops
func Register(lifecycle fx.Lifecycle, reporter Reporter) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			reporter.Flush()
			return nil
		},
	})
}
