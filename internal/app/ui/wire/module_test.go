package wire

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"memeview/internal/app/monitor"
	"memeview/internal/app/navigator"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

func newParams(ctrl *gomock.Controller) UIParams {
	mockLogger := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	mockLogger.EXPECT().WithComponent(gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Debug().DoAndReturn(noopLogger.Debug).AnyTimes()

	return UIParams{
		Config:    config.DefaultConfig(),
		Navigator: navigator.NewMockNavigator(ctrl),
		Monitor:   monitor.NewMockMonitor(ctrl),
		Logger:    mockLogger,
	}
}

func Test_NewUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := NewUI(newParams(ctrl))

	assert.NotNil(t, factory)
}

func Test_UI_CreateProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := NewUI(newParams(ctrl))
	program, err := factory(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, program)
}
