package telemetry

import (
	"errors"
	"io"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "memeview/internal/app/errors"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

const testDSN = "https://public@example.com/1"

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	mockLog.EXPECT().Debug().DoAndReturn(noopLogger.Debug).AnyTimes()
	mockLog.EXPECT().Info().DoAndReturn(noopLogger.Info).AnyTimes()

	return mockLog
}

func Test_NewReporter(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name  string
		dsn   string
		noop  bool
		error error
	}{
		{name: "disabled without dsn", dsn: "", noop: true},
		{name: "enabled with dsn", dsn: testDSN},
		{name: "invalid dsn", dsn: "not a dsn", error: apperrors.ErrFailedToInitSentry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Telemetry.DSN = tt.dsn

			reporter, err := NewReporter(cfg, newTestLogger(ctrl))

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, reporter)

				return
			}

			require.NoError(t, err)

			_, isNoop := reporter.(*noOpReporter)
			assert.Equal(t, tt.noop, isNoop)
		})
	}
}

func Test_SentryReporter_Capture(t *testing.T) {
	var events []*sentry.Event

	reporter, err := newSentryReporter(sentry.ClientOptions{
		Dsn: testDSN,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			events = append(events, event)
			return nil
		},
	})
	require.NoError(t, err)

	reporter.Breadcrumb("navigation", "advance")
	reporter.Capture(errors.New("boom"), map[string]string{"stage": "fetch"})
	reporter.Capture(nil, nil)
	reporter.Flush()

	require.Len(t, events, 1)
	assert.Equal(t, "fetch", events[0].Tags["stage"])
	require.NotEmpty(t, events[0].Exception)
	assert.Equal(t, "boom", events[0].Exception[0].Value)
	require.Len(t, events[0].Breadcrumbs, 1)
	assert.Equal(t, "advance", events[0].Breadcrumbs[0].Message)
}

func Test_NoOp(t *testing.T) {
	reporter := NoOp()

	assert.NotPanics(t, func() {
		reporter.Breadcrumb("navigation", "back")
		reporter.Capture(errors.New("ignored"), nil)
		reporter.Flush()
	})
}
