package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	ColorPrimary  = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	ColorMuted    = lipgloss.Color("7")       // Light gray - muted elements
	ColorBorder   = lipgloss.Color("8")       // Gray - borders and help text
	ColorDisabled = lipgloss.Color("238")     // Dark gray - unavailable controls

	// Status colors
	ColorFailed  = lipgloss.Color("9")  // Red - error view
	ColorWarning = lipgloss.Color("11") // Yellow - transient notices
	ColorReady   = lipgloss.Color("10") // Green - idle indicator
)

// SeparatorColor is the adaptive color for header and footer rules
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
