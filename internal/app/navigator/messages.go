package navigator

import (
	tea "github.com/charmbracelet/bubbletea"

	"memeview/internal/app/meme"
	"memeview/internal/app/renderer"
)

// NoticeFetchFailed is shown when a fetch fails while content is on screen
const NoticeFetchFailed = "failed to load next item"

// FetchedMsg carries the outcome of a fetch task
type FetchedMsg struct {
	Item meme.Item
	Err  error
}

// RenderedMsg carries the outcome of a render task tagged with its sequence number
type RenderedMsg struct {
	Seq     uint64
	Picture renderer.Picture
	Err     error
}

// NoticeMsg asks the screen to show a transient message
type NoticeMsg struct {
	Text string
}

func notice(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text}
	}
}
