package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memeview/internal/config"
)

// RenderLine renders a horizontal rule of the given width
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(width int, title, info string) string {
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if titleWidth > maxTitleWidth && maxTitleWidth > 0 {
		title = Truncate(title, maxTitleWidth)
		titleWidth = lipgloss.Width(title)
	}

	separatorWidth := max(width-titleWidth-infoWidth-HeaderFixedChars, HeaderSeparatorMinWidth)

	return HeaderStyle.Render(RenderLine(3) + " " + title + " " + RenderLine(separatorWidth) + " " + info + " " + RenderLine(3))
}

// RenderFooter renders a rule ending with the stats and version, followed by the help line
func RenderFooter(width int, stats, helpText string) string {
	version := fmt.Sprintf("v%s", config.Version)
	if stats != "" {
		version = StatsStyle.Render(stats) + "  " + version
	}

	versionWidth := lipgloss.Width(version)
	separatorWidth := max(width-versionWidth-FooterFixedChars, FooterSeparatorMinWidth)

	versionLine := RenderLine(separatorWidth) + " " + version + " " + RenderLine(3)
	help := FooterHelpStyle.Render(HelpStyle.Render(helpText))

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, versionLine, help))
}

// RenderContent wraps content with spacing
func RenderContent(content string) string {
	return ContentStyle.Render(content)
}

// Truncate shortens s to maxWidth cells, ending with an ellipsis
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}

// PictureArea returns the cell area left for a picture in a terminal of the given size
func PictureArea(width, height int) (cols, rows int) {
	cols = max(width-ContentPadding, 1)
	rows = max(height-ChromeHeight, MinPictureRows)

	return cols, rows
}
