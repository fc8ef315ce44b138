package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"memeview/internal/app/monitor"
	"memeview/internal/app/navigator"
	"memeview/internal/app/ui/browser"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

// UI creates a Bubble Tea program for the browser screen
type UI func(ctx context.Context) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	Navigator navigator.Navigator
	Monitor   monitor.Monitor
	Logger    logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := browser.NewModel(
			ctx,
			params.Config,
			params.Navigator,
			params.Monitor,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
