package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"memeview/internal/app/meme"
	"memeview/internal/config"
)

var (
	sectionHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	commandName     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	exampleCode     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	bodyText        = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	mutedText       = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1)
	errorLabel      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, bodyText.Render(config.AppDescription))
}

// RenderHelp renders usage, commands, options and examples
func RenderHelp() string {
	row := func(name, desc string) string {
		return bodyText.Render(fmt.Sprintf("  %-28s %s", commandName.Render(name), mutedText.Render(desc)))
	}

	example := func(code, desc string) string {
		return bodyText.Render(fmt.Sprintf("  %-34s %s", exampleCode.Render(code), mutedText.Render(desc)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		bodyText.Render("  "+config.AppName+" [command] [options]"),
		sectionHeader.Render("Commands:"),
		row("browse", "Browse random items (default)"),
		row("fetch", "Fetch one item and print it"),
		row("version", "Show version"),
		row("help", "Show help"),
		sectionHeader.Render("Options:"),
		row("-e, --endpoint <url>", "Random item endpoint URL"),
		row("-w, --width <cells>", "Picture width in terminal cells"),
		row("--no-picture", "fetch: print only the item details"),
		sectionHeader.Render("Examples:"),
		example(config.AppName, "Start browsing"),
		example(config.AppName+" fetch --width 40", "Print a small picture"),
		example(config.AppName+" fetch --no-picture", "Print the item details"),
	) + "\n"
}

// RenderItem renders the details of a fetched item
func RenderItem(item meme.Item) string {
	media := item.Media()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		commandName.Render("#"+item.ID)+" "+bodyText.Render(item.Description),
		mutedText.Render(fmt.Sprintf("%s %s", media.Kind, media.URL)),
	)
}

// RenderError renders an error line for the terminal
func RenderError(err error) string {
	return errorLabel.Render("Error:") + " " + err.Error()
}
