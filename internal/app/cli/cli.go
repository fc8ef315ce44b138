//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"memeview/internal/app/fetcher"
	"memeview/internal/app/renderer"
	"memeview/internal/app/ui/wire"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

// lines printed around the picture by fetch, the shell prompt included
const itemLines = 3

// CLI defines the interface for cli operations
type CLI interface {
	Run(ctx context.Context) error
}

// cli dispatches the parsed command
type cli struct {
	opts     *Options
	cfg      *config.Config
	ui       wire.UI
	fetcher  fetcher.Fetcher
	renderer renderer.Renderer
	out      io.Writer
	terminal func() (int, int)
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	opts *Options,
	cfg *config.Config,
	ui wire.UI,
	f fetcher.Fetcher,
	r renderer.Renderer,
	log logger.Logger,
) CLI {
	return &cli{
		opts:     opts,
		cfg:      cfg,
		ui:       ui,
		fetcher:  f,
		renderer: r,
		out:      os.Stdout,
		terminal: terminalSize,
		log:      log.WithComponent("CLI"),
	}
}

// Run executes the command selected on the command line
func (c *cli) Run(ctx context.Context) error {
	switch c.opts.Type {
	case CommandHelp:
		c.log.Debug().Msg("Displaying help information")
		fmt.Fprint(c.out, RenderHelp())

		return nil
	case CommandVersion:
		c.log.Debug().Msg("Displaying version information")
		fmt.Fprintln(c.out, RenderTitle())

		return nil
	case CommandFetch:
		return c.fetch(ctx)
	default:
		return c.browse(ctx)
	}
}

// browse runs the interactive screen until the user quits
func (c *cli) browse(ctx context.Context) error {
	c.log.Debug().Msgf("Browsing %s", c.cfg.Endpoint.URL)

	program, err := c.ui(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to create TUI program")
		return err
	}

	if _, err := program.Run(); err != nil {
		c.log.Error().Err(err).Msg("TUI exited with error")
		return err
	}

	return nil
}

// fetch prints one item and, unless disabled, its picture sized to the terminal
func (c *cli) fetch(ctx context.Context) error {
	item, err := c.fetcher.Fetch(ctx)
	if err != nil {
		fmt.Fprintln(c.out, RenderError(err))
		return err
	}

	fmt.Fprintln(c.out, RenderItem(item))

	if c.opts.NoPicture {
		return nil
	}

	size := renderer.Size{Cols: c.cfg.Render.Width}

	width, height := c.terminal()
	if width > 0 {
		size.Cols = min(size.Cols, width)
	}

	if height > 0 {
		size.Rows = max(height-itemLines, 1)
	}

	picture, err := c.renderer.Render(ctx, item, size)
	if err != nil {
		fmt.Fprintln(c.out, RenderError(err))
		return err
	}

	fmt.Fprintln(c.out, picture.String())

	return nil
}

// terminalSize returns the stdout size in cells, zeros when stdout is not a terminal
func terminalSize() (int, int) {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return 0, 0
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return 0, 0
	}

	return width, height
}
