package browser

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"memeview/internal/app/meme"
	"memeview/internal/app/monitor"
	"memeview/internal/app/navigator"
	"memeview/internal/app/renderer"
	"memeview/internal/config"
)

func Test_Update_WindowSize(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		expected renderer.Size
	}{
		{name: "wide terminal keeps configured width", width: 200, height: 50, expected: renderer.Size{Cols: config.DefaultRenderWidth, Rows: 41}},
		{name: "narrow terminal shrinks picture", width: 40, height: 20, expected: renderer.Size{Cols: 36, Rows: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, nav, _ := newTestModel(ctrl)
			nav.EXPECT().Resize(tt.expected)

			result, cmd := m.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			model := result.(Model)

			assert.Nil(t, cmd)
			assert.True(t, model.state.ready)
			assert.Equal(t, tt.width, model.ui.width)
			assert.Equal(t, tt.height, model.ui.height)
		})
	}
}

func Test_HandleKeyPress(t *testing.T) {
	content := navigator.Snapshot{State: navigator.ShowingContent, CanBack: true}
	first := navigator.Snapshot{State: navigator.ShowingContent}
	failed := navigator.Snapshot{State: navigator.ShowingError}

	tests := []struct {
		name     string
		key      tea.KeyMsg
		snapshot navigator.Snapshot
		expect   func(nav *navigator.MockNavigator)
		quits    bool
	}{
		{
			name:     "right arrow advances",
			key:      tea.KeyMsg{Type: tea.KeyRight},
			snapshot: first,
			expect:   func(nav *navigator.MockNavigator) { nav.EXPECT().Advance(gomock.Any()).Return(nil) },
		},
		{
			name:     "space advances",
			key:      tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			snapshot: first,
			expect:   func(nav *navigator.MockNavigator) { nav.EXPECT().Advance(gomock.Any()).Return(nil) },
		},
		{
			name:     "n advances",
			key:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")},
			snapshot: first,
			expect:   func(nav *navigator.MockNavigator) { nav.EXPECT().Advance(gomock.Any()).Return(nil) },
		},
		{
			name:     "left arrow retreats",
			key:      tea.KeyMsg{Type: tea.KeyLeft},
			snapshot: content,
			expect:   func(nav *navigator.MockNavigator) { nav.EXPECT().Retreat(gomock.Any()).Return(nil) },
		},
		{
			name:     "left arrow ignored on first item",
			key:      tea.KeyMsg{Type: tea.KeyLeft},
			snapshot: first,
			expect:   func(nav *navigator.MockNavigator) {},
		},
		{
			name:     "r retries in error state",
			key:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")},
			snapshot: failed,
			expect:   func(nav *navigator.MockNavigator) { nav.EXPECT().Retry(gomock.Any()).Return(nil) },
		},
		{
			name:     "r ignored while showing content",
			key:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")},
			snapshot: content,
			expect:   func(nav *navigator.MockNavigator) {},
		},
		{
			name:     "q quits",
			key:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")},
			snapshot: content,
			expect:   func(nav *navigator.MockNavigator) {},
			quits:    true,
		},
		{
			name:     "ctrl+c quits",
			key:      tea.KeyMsg{Type: tea.KeyCtrlC},
			snapshot: failed,
			expect:   func(nav *navigator.MockNavigator) {},
			quits:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, nav, _ := newTestModel(ctrl)
			nav.EXPECT().Snapshot().Return(tt.snapshot).AnyTimes()
			tt.expect(nav)

			_, cmd := m.Update(tt.key)

			if tt.quits {
				require.NotNil(t, cmd)
				assert.Equal(t, tea.Quit(), cmd())

				return
			}

			assert.Nil(t, cmd)
		})
	}
}

func Test_Update_ForwardsNavigatorMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, nav, _ := newTestModel(ctrl)

	fetched := navigator.FetchedMsg{Item: meme.Item{ID: "1", StaticURL: "u"}}
	rendered := navigator.RenderedMsg{Seq: 1, Picture: renderer.Picture{Lines: []string{"x"}}}
	render := func() tea.Msg { return rendered }

	nav.EXPECT().HandleFetched(gomock.Any(), fetched).Return(render)
	nav.EXPECT().HandleRendered(gomock.Any(), rendered)

	_, cmd := m.Update(fetched)
	require.NotNil(t, cmd)
	assert.Equal(t, rendered, cmd())

	_, cmd = m.Update(rendered)
	assert.Nil(t, cmd)
}

func Test_Update_Notice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestModel(ctrl)

	result, cmd := m.Update(navigator.NoticeMsg{Text: navigator.NoticeFetchFailed})
	m = result.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, navigator.NoticeFetchFailed, m.state.notice)

	result, _ = m.Update(navigator.NoticeMsg{Text: "second"})
	m = result.(Model)

	result, _ = m.Update(clearNoticeMsg{id: 1})
	m = result.(Model)
	assert.Equal(t, "second", m.state.notice, "stale clear must not hide a newer notice")

	result, _ = m.Update(clearNoticeMsg{id: 2})
	m = result.(Model)
	assert.Empty(t, m.state.notice)
}

func Test_Update_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestModel(ctrl)

	result, cmd := m.Update(statsMsg(monitor.Stats{CPU: 2.5, MEM: 40}))
	model := result.(Model)

	assert.NotNil(t, cmd)
	assert.InDelta(t, 2.5, model.state.appCPU, 0.001)
	assert.InDelta(t, 40.0, model.state.appMEM, 0.001)
}

func Test_Update_TickDrivesPulse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, nav, _ := newTestModel(ctrl)

	gomock.InOrder(
		nav.EXPECT().Snapshot().Return(navigator.Snapshot{Fetching: true}),
		nav.EXPECT().Snapshot().Return(navigator.Snapshot{}),
	)

	_, cmd := m.Update(tickMsg{})
	assert.NotNil(t, cmd)
	assert.True(t, m.ui.pulse.IsActive())

	_, _ = m.Update(tickMsg{})
	assert.False(t, m.ui.pulse.IsActive())
}

func Test_StatsCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mon := monitor.NewMockMonitor(ctrl)

	assert.NotNil(t, statsCmd(t.Context(), mon))
}

func Test_FormatStats(t *testing.T) {
	assert.Equal(t, "1.5%", formatCPU(1.5))
	assert.Equal(t, "512MB", formatMEM(512))
	assert.Equal(t, "2.0GB", formatMEM(2048))
}

var errBoom = errors.New("boom")
