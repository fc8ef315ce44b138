package app

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"memeview/internal/app/cli"
	"memeview/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner records the requested shutdown
type mockShutdowner struct {
	called  bool
	options []fx.ShutdownOption
}

func (m *mockShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	m.called = true
	m.options = opts

	return nil
}

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	mockLog.EXPECT().Debug().DoAndReturn(noopLogger.Debug).AnyTimes()
	mockLog.EXPECT().Info().DoAndReturn(noopLogger.Info).AnyTimes()
	mockLog.EXPECT().Error().DoAndReturn(noopLogger.Error).AnyTimes()

	return mockLog
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	application := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
	assert.NoError(t, application.ctx.Err())
}

func Test_execute(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError bool
	}{
		{name: "Success", err: nil, expectedError: false},
		{name: "Failure", err: errors.New("fetch failed"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCLI := cli.NewMockCLI(ctrl)
			mockCLI.EXPECT().Run(gomock.Any()).Return(tt.err)

			application := NewApp(mockCLI, &mockShutdowner{}, newTestLogger(ctrl))

			err := application.execute(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_App_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockCLI.EXPECT().Run(gomock.Any()).Return(errors.New("boom"))

	shutdowner := &mockShutdowner{}
	application := NewApp(mockCLI, shutdowner, newTestLogger(ctrl))

	application.Run()

	assert.True(t, shutdowner.called)
	require.Len(t, shutdowner.options, 1)

	select {
	case <-application.done:
	default:
		t.Fatal("done channel must be closed after Run")
	}
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	application := NewApp(mockCLI, &mockShutdowner{}, newTestLogger(ctrl))

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, application)

	assert.NotNil(t, capturedHook.OnStart)
	assert.NotNil(t, capturedHook.OnStop)
}

func Test_Register_OnStopHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	application := NewApp(mockCLI, &mockShutdowner{}, newTestLogger(ctrl))

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, application)

	t.Run("waits for run to finish", func(t *testing.T) {
		close(application.done)

		err := capturedHook.OnStop(context.Background())

		assert.NoError(t, err)
		assert.ErrorIs(t, application.ctx.Err(), context.Canceled)
	})
}

func Test_Register_OnStopHook_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	application := NewApp(mockCLI, &mockShutdowner{}, newTestLogger(ctrl))

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, application)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := capturedHook.OnStop(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Register_OnStartHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockCLI.EXPECT().Run(gomock.Any()).Return(nil)

	shutdowner := &mockShutdowner{}
	application := NewApp(mockCLI, shutdowner, newTestLogger(ctrl))

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, application)

	require.NoError(t, capturedHook.OnStart(context.Background()))
	<-application.done

	assert.NoError(t, capturedHook.OnStop(context.Background()))
}
