package components

import (
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
)

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed under the help line
var Tips = []string{
	tipDesc("Print one item without the TUI using ") + tipKey("memeview fetch"),
	tipDesc("Skip the picture with ") + tipKey("memeview fetch --no-picture"),
	tipDesc("Point at another feed with ") + tipKey("--endpoint"),
	tipDesc("Make pictures smaller with ") + tipKey("--width 40"),
	tipDesc("Going back never refetches, ") + tipKey("n") + tipDesc(" replays history first"),
	tipDesc("Press ") + tipKey("r") + tipDesc(" to retry after a failure"),
}

// RandomTip picks a tip to show for the session
func RandomTip() string {
	//nolint:gosec // weak random is fine for picking a hint
	return Tips[rand.IntN(len(Tips))]
}
