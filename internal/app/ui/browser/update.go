package browser

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"memeview/internal/app/navigator"
	"memeview/internal/app/renderer"
	"memeview/internal/app/ui/components"
)

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// clearNoticeMsg hides the notice it was scheduled for
type clearNoticeMsg struct {
	id int
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.state.ready = true

		cols, rows := components.PictureArea(msg.Width, msg.Height)
		m.navigator.Resize(renderer.Size{Cols: min(cols, m.cfg.Render.Width), Rows: rows})

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.ui.spinner, cmd = m.ui.spinner.Update(msg)

		return m, cmd

	case tickMsg:
		m.updatePulse()
		return m, tickCmd()

	case statsMsg:
		m.state.appCPU = msg.CPU
		m.state.appMEM = msg.MEM

		return m, statsCmd(m.ctx, m.monitor)

	case navigator.FetchedMsg:
		return m, m.navigator.HandleFetched(m.ctx, msg)

	case navigator.RenderedMsg:
		m.navigator.HandleRendered(m.ctx, msg)
		return m, nil

	case navigator.NoticeMsg:
		m.state.noticeID++
		m.state.notice = msg.Text
		id := m.state.noticeID

		return m, tea.Tick(m.cfg.UI.Notice, func(time.Time) tea.Msg {
			return clearNoticeMsg{id: id}
		})

	case clearNoticeMsg:
		if msg.id == m.state.noticeID {
			m.state.notice = ""
		}

		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys()

	switch {
	case key.Matches(msg, keys.ForceQuit):
		m.log.Warn().Msg("Force quit requested, exiting immediately")
		return m, tea.Quit

	case key.Matches(msg, keys.Quit):
		m.log.Info().Msg("Quit requested")
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		return m, m.navigator.Retreat(m.ctx)

	case key.Matches(msg, keys.Next):
		return m, m.navigator.Advance(m.ctx)

	case key.Matches(msg, keys.Retry):
		return m, m.navigator.Retry(m.ctx)
	}

	return m, nil
}

// updatePulse runs the header pulse while a fetch is pending
func (m Model) updatePulse() {
	if !m.navigator.Snapshot().Fetching {
		if m.ui.pulse.IsActive() {
			m.ui.pulse.Stop()
		}

		return
	}

	if !m.ui.pulse.IsActive() {
		m.ui.pulse.Start()
	}

	m.ui.pulse.Update()
}

func tickCmd() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
