package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// HeaderStyle for the top rule
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// ContentStyle wraps the main area
	ContentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// FooterStyle for the bottom block
	FooterStyle = lipgloss.NewStyle()

	// FooterHelpStyle positions the help line
	FooterHelpStyle = lipgloss.NewStyle().
			PaddingTop(0)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorBorder).
			Padding(0, 2)

	// DescriptionStyle for the item caption
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorFailed).
			Bold(true)

	// ErrorHintStyle for the line under an error message
	ErrorHintStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	// NoticeStyle for transient notices
	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// DisabledStyle for controls that cannot be used right now
	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorDisabled)

	// EnabledStyle for controls that can be used
	EnabledStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// SpinnerStyle for loading spinners
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// PulseStyle for the fetch indicator
	PulseStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// IdleStyle for the indicator while nothing is pending
	IdleStyle = lipgloss.NewStyle().
			Foreground(ColorReady)

	// StatsStyle for cpu/mem figures
	StatsStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
