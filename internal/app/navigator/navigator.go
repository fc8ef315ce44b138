//go:generate mockgen -source=navigator.go -destination=navigator_mock.go -package=navigator
package navigator

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/looplab/fsm"

	"memeview/internal/app/errors"
	"memeview/internal/app/fetcher"
	"memeview/internal/app/history"
	"memeview/internal/app/meme"
	"memeview/internal/app/renderer"
	"memeview/internal/app/telemetry"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

// Snapshot is a read-only view of the session used for drawing
type Snapshot struct {
	State      string
	CanBack    bool
	CanForward bool
	Fetching   bool
	Rendering  bool
	Cursor     int
	Len        int
	Current    meme.Item
	HasCurrent bool
	Picture    renderer.Picture
	Err        error
}

// CanRetry reports whether Retry would do anything
func (s Snapshot) CanRetry() bool {
	return s.State == ShowingError
}

// Navigator owns the browsing session: history, cursor and display state.
// Every operation must be called from the bubbletea update loop; blocking work
// is returned as a tea.Cmd whose message is fed back through the Handle methods.
type Navigator interface {
	Initialize(ctx context.Context) tea.Cmd
	Advance(ctx context.Context) tea.Cmd
	Retreat(ctx context.Context) tea.Cmd
	Retry(ctx context.Context) tea.Cmd
	HandleFetched(ctx context.Context, msg FetchedMsg) tea.Cmd
	HandleRendered(ctx context.Context, msg RenderedMsg)
	Resize(size renderer.Size)
	Snapshot() Snapshot
}

type navigator struct {
	fetcher  fetcher.Fetcher
	renderer renderer.Renderer
	reporter telemetry.Reporter
	log      logger.Logger

	history *history.History
	state   *fsm.FSM
	size    renderer.Size

	fetching  bool
	rendering bool
	resume    resumePoint
	seq       uint64
	cancel    context.CancelFunc
	picture   renderer.Picture
	err       error
}

// resumePoint is the display restored when a fetch started from it fails
type resumePoint struct {
	state string
	err   error
}

// NewNavigator creates a navigator with an empty history
func NewNavigator(
	cfg *config.Config,
	f fetcher.Fetcher,
	r renderer.Renderer,
	reporter telemetry.Reporter,
	log logger.Logger,
) Navigator {
	componentLog := log.WithComponent("NAVIGATOR")

	return &navigator{
		fetcher:  f,
		renderer: r,
		reporter: reporter,
		log:      componentLog,
		history:  history.New(),
		state:    newDisplayFSM(componentLog),
		size:     renderer.Size{Cols: cfg.Render.Width},
	}
}

// Initialize loads the first item of the session
func (n *navigator) Initialize(ctx context.Context) tea.Cmd {
	n.log.Info().Msg("Starting session")
	return n.Advance(ctx)
}

// Advance replays the next history item or fetches a new one
func (n *navigator) Advance(ctx context.Context) tea.Cmd {
	before := resumePoint{state: n.state.Current(), err: n.err}

	transition(ctx, n.state, Show)

	if n.history.CanForward() {
		if _, err := n.history.Forward(); err != nil {
			n.log.Warn().Err(err).Msg("Failed to move forward")
			return nil
		}

		n.log.Debug().Msgf("Replaying item %d of %d", n.history.Cursor()+1, n.history.Len())

		return n.render(ctx)
	}

	if n.fetching {
		n.log.Debug().Err(errors.ErrFetchInProgress).Msg("Ignoring advance")
		return nil
	}

	n.fetching = true
	n.resume = before
	n.err = nil

	return n.fetch(ctx)
}

// Retreat shows the previous history item
func (n *navigator) Retreat(ctx context.Context) tea.Cmd {
	if _, err := n.history.Back(); err != nil {
		n.log.Warn().Err(err).Msgf("Cannot go back from position %d", n.history.Cursor())
		return nil
	}

	n.log.Debug().Msgf("Back to item %d of %d", n.history.Cursor()+1, n.history.Len())

	return n.render(ctx)
}

// Retry repeats the failed step: the first fetch or the current render
func (n *navigator) Retry(ctx context.Context) tea.Cmd {
	if n.state.Current() != ShowingError {
		return nil
	}

	if n.history.IsEmpty() {
		n.log.Info().Msg("Retrying initial fetch")
		return n.Advance(ctx)
	}

	n.log.Info().Msgf("Retrying render of item %d", n.history.Cursor()+1)

	return n.render(ctx)
}

// HandleFetched appends a fetched item or reports the failure
func (n *navigator) HandleFetched(ctx context.Context, msg FetchedMsg) tea.Cmd {
	n.fetching = false

	if msg.Err != nil {
		n.log.Error().Err(msg.Err).Msg("Failed to fetch item")
		n.reporter.Capture(msg.Err, map[string]string{"stage": "fetch"})

		switch {
		case n.history.IsEmpty():
			n.err = msg.Err
			transition(ctx, n.state, Fail)
		case n.resume.state == ShowingError:
			n.err = n.resume.err
			transition(ctx, n.state, Fail)
		}

		return notice(NoticeFetchFailed)
	}

	n.history.Append(msg.Item)
	n.reporter.Breadcrumb("navigator", "fetched item "+msg.Item.ID)
	n.log.Info().Msgf("Fetched item '%s' (%d in history)", msg.Item.ID, n.history.Len())

	return n.render(ctx)
}

// HandleRendered applies the latest render result and drops superseded ones
func (n *navigator) HandleRendered(ctx context.Context, msg RenderedMsg) {
	if msg.Seq != n.seq {
		n.log.Debug().Msgf("Dropping stale render %d (latest %d)", msg.Seq, n.seq)
		return
	}

	n.rendering = false
	n.release()

	if msg.Err != nil {
		item, _ := n.history.Current()
		n.log.Error().Err(msg.Err).Msgf("Failed to render item '%s'", item.ID)
		n.reporter.Capture(msg.Err, map[string]string{"stage": "render", "item": item.ID})

		n.picture = renderer.Picture{}
		n.err = msg.Err
		transition(ctx, n.state, Fail)

		return
	}

	n.picture = msg.Picture
	n.err = nil
	transition(ctx, n.state, Show)
}

// Resize changes the area used by subsequent renders
func (n *navigator) Resize(size renderer.Size) {
	n.size = size
}

// Snapshot returns the current session view
func (n *navigator) Snapshot() Snapshot {
	current, ok := n.history.Current()

	return Snapshot{
		State:      n.state.Current(),
		CanBack:    n.history.CanBack(),
		CanForward: n.history.CanForward(),
		Fetching:   n.fetching,
		Rendering:  n.rendering,
		Cursor:     n.history.Cursor(),
		Len:        n.history.Len(),
		Current:    current,
		HasCurrent: ok,
		Picture:    n.picture,
		Err:        n.err,
	}
}

func (n *navigator) fetch(ctx context.Context) tea.Cmd {
	f := n.fetcher

	return func() tea.Msg {
		item, err := f.Fetch(ctx)
		return FetchedMsg{Item: item, Err: err}
	}
}

// render starts a new render of the current item, superseding any pending one
func (n *navigator) render(ctx context.Context) tea.Cmd {
	item, ok := n.history.Current()
	if !ok {
		return nil
	}

	n.release()

	renderCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	n.seq++
	n.rendering = true
	n.picture = renderer.Picture{}

	seq := n.seq
	size := n.size
	r := n.renderer

	return func() tea.Msg {
		picture, err := r.Render(renderCtx, item, size)
		return RenderedMsg{Seq: seq, Picture: picture, Err: err}
	}
}

func (n *navigator) release() {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}
