package browser

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"memeview/internal/app/monitor"
	"memeview/internal/app/navigator"
	"memeview/internal/app/ui/components"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

// Model is the Bubble Tea model for the single browsing screen
type Model struct {
	ctx       context.Context
	navigator navigator.Navigator
	monitor   monitor.Monitor
	cfg       *config.Config

	state struct {
		ready    bool
		notice   string
		noticeID int
		appCPU   float64
		appMEM   float64
	}

	ui struct {
		width   int
		height  int
		keys    components.KeyMap
		help    help.Model
		spinner spinner.Model
		pulse   *components.Pulse
		tip     string
	}

	log logger.Logger
}

// NewModel creates the browser model around a navigator
func NewModel(
	ctx context.Context,
	cfg *config.Config,
	nav navigator.Navigator,
	mon monitor.Monitor,
	log logger.Logger,
) Model {
	m := Model{
		ctx:       ctx,
		navigator: nav,
		monitor:   mon,
		cfg:       cfg,
		log:       log.WithComponent("UI"),
	}

	m.ui.width = components.DefaultWidth
	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(components.SpinnerStyle),
	)
	m.ui.pulse = components.NewPulse()
	m.ui.tip = components.RandomTip()

	return m
}

// Init starts the session and the background tickers
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.navigator.Initialize(m.ctx),
		m.ui.spinner.Tick,
		tickCmd(),
	}

	if m.cfg.UI.Stats {
		cmds = append(cmds, statsCmd(m.ctx, m.monitor))
	}

	return tea.Batch(cmds...)
}

// keys returns the key map with bindings enabled according to the session
func (m Model) keys() components.KeyMap {
	snapshot := m.navigator.Snapshot()
	keys := m.ui.keys

	keys.Back.SetEnabled(snapshot.CanBack)
	keys.Retry.SetEnabled(snapshot.CanRetry())

	return keys
}
