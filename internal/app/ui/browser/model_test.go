package browser

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"memeview/internal/app/monitor"
	"memeview/internal/app/navigator"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()
	mockLog.EXPECT().Debug().DoAndReturn(noopLogger.Debug).AnyTimes()
	mockLog.EXPECT().Info().DoAndReturn(noopLogger.Info).AnyTimes()
	mockLog.EXPECT().Warn().DoAndReturn(noopLogger.Warn).AnyTimes()
	mockLog.EXPECT().Error().DoAndReturn(noopLogger.Error).AnyTimes()

	return mockLog
}

func newTestModel(ctrl *gomock.Controller) (Model, *navigator.MockNavigator, *monitor.MockMonitor) {
	nav := navigator.NewMockNavigator(ctrl)
	mon := monitor.NewMockMonitor(ctrl)

	m := NewModel(context.Background(), config.DefaultConfig(), nav, mon, newTestLogger(ctrl))

	return m, nav, mon
}

func Test_NewModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestModel(ctrl)

	assert.False(t, m.state.ready)
	assert.Empty(t, m.state.notice)
	assert.NotNil(t, m.ui.pulse)
	assert.False(t, m.ui.pulse.IsActive())
	assert.NotEmpty(t, m.ui.tip)
}

func Test_Init(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, nav, _ := newTestModel(ctrl)

	fetch := func() tea.Msg { return navigator.FetchedMsg{} }
	nav.EXPECT().Initialize(gomock.Any()).Return(fetch)

	cmd := m.Init()

	assert.NotNil(t, cmd)
}

func Test_Keys(t *testing.T) {
	tests := []struct {
		name          string
		snapshot      navigator.Snapshot
		expectedBack  bool
		expectedRetry bool
	}{
		{
			name:     "first item",
			snapshot: navigator.Snapshot{State: navigator.ShowingContent},
		},
		{
			name:         "later item",
			snapshot:     navigator.Snapshot{State: navigator.ShowingContent, CanBack: true},
			expectedBack: true,
		},
		{
			name:          "error on later item",
			snapshot:      navigator.Snapshot{State: navigator.ShowingError, CanBack: true},
			expectedBack:  true,
			expectedRetry: true,
		},
		{
			name:          "error on first load",
			snapshot:      navigator.Snapshot{State: navigator.ShowingError},
			expectedRetry: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, nav, _ := newTestModel(ctrl)
			nav.EXPECT().Snapshot().Return(tt.snapshot)

			keys := m.keys()

			assert.Equal(t, tt.expectedBack, keys.Back.Enabled())
			assert.Equal(t, tt.expectedRetry, keys.Retry.Enabled())
			assert.True(t, keys.Next.Enabled())
			assert.True(t, m.ui.keys.Back.Enabled(), "shared key map must stay untouched")
		})
	}
}
