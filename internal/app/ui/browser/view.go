package browser

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"memeview/internal/app/navigator"
	"memeview/internal/app/ui/components"
	"memeview/internal/config"
)

const (
	errorTitle = "Something went wrong"
	errorHint  = "press r to retry, → to try another one"
	loading    = "loading…"
	noPicture  = "no picture"
)

// View renders the screen
func (m Model) View() string {
	if !m.state.ready {
		return "Initializing…"
	}

	snapshot := m.navigator.Snapshot()

	var body string
	if snapshot.State == navigator.ShowingError {
		body = m.renderError(snapshot)
	} else {
		body = m.renderItem(snapshot)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.RenderHeader(m.ui.width, config.AppName, m.renderPosition(snapshot)),
		components.RenderContent(body),
		m.renderNotice(),
		components.RenderFooter(m.ui.width, m.renderAppStats(), m.ui.help.View(m.keys())),
		components.HelpStyle.Render(m.ui.tip),
	)
}

// renderPosition renders the pulse and the cursor position, e.g. "◯ 2/5"
func (m Model) renderPosition(snapshot navigator.Snapshot) string {
	style := components.IdleStyle
	if m.ui.pulse.IsActive() {
		style = components.PulseStyle
	}

	position := "–"
	if snapshot.HasCurrent {
		position = fmt.Sprintf("%d/%d", snapshot.Cursor+1, snapshot.Len)
	}

	return m.ui.pulse.Render(style) + " " + position
}

// renderItem renders the picture (or a placeholder), the description and the arrows
func (m Model) renderItem(snapshot navigator.Snapshot) string {
	width := max(m.ui.width-components.ContentPadding, 1)

	var picture string

	switch {
	case !snapshot.Picture.IsZero():
		picture = snapshot.Picture.String()
	case snapshot.Rendering || snapshot.Fetching:
		picture = m.ui.spinner.View() + " " + loading
	default:
		picture = components.DisabledStyle.Render(noPicture)
	}

	lines := []string{picture}

	if snapshot.HasCurrent && snapshot.Current.Description != "" {
		description := lipgloss.NewStyle().Width(width).Render(snapshot.Current.Description)
		lines = append(lines, "", components.DescriptionStyle.Render(description))
	}

	lines = append(lines, m.renderArrows(snapshot))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderArrows renders the back/next controls, dimming back when there is nothing behind
func (m Model) renderArrows(snapshot navigator.Snapshot) string {
	back := components.DisabledStyle.Render("‹ back")
	if snapshot.CanBack {
		back = components.EnabledStyle.Render("‹ back")
	}

	return back + "   " + components.EnabledStyle.Render("next ›")
}

// renderError renders the error view with a retry hint
func (m Model) renderError(snapshot navigator.Snapshot) string {
	width := max(m.ui.width-components.ContentPadding, 1)
	lines := []string{components.ErrorStyle.Render(errorTitle)}

	if snapshot.Err != nil {
		lines = append(lines, components.Truncate(snapshot.Err.Error(), width))
	}

	lines = append(lines, "", components.ErrorHintStyle.Render(errorHint))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderNotice renders the transient notice line
func (m Model) renderNotice() string {
	if m.state.notice == "" {
		return ""
	}

	return components.NoticeStyle.Render("  ! " + m.state.notice)
}

// renderAppStats renders memeview's own CPU and memory usage
func (m Model) renderAppStats() string {
	if m.state.appCPU == 0 && m.state.appMEM == 0 {
		return ""
	}

	return fmt.Sprintf("cpu %s • mem %s", formatCPU(m.state.appCPU), formatMEM(m.state.appMEM))
}
