package app

import (
	"context"

	"go.uber.org/fx"

	"memeview/internal/app/cli"
	"memeview/internal/config/logger"
)

// App represents the main application container
type App struct {
	cli        cli.CLI
	shutdowner fx.Shutdowner
	log        logger.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, shutdowner fx.Shutdowner, log logger.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		cli:        cli,
		shutdowner: shutdowner,
		log:        log,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Run executes the command and asks fx to shut down with its exit code
func (a *App) Run() {
	exitCode := 0
	if err := a.execute(a.ctx); err != nil {
		exitCode = 1
	}

	close(a.done)

	if err := a.shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
		a.log.Error().Err(err).Msg("Failed to shut down")
	}
}

// execute runs the CLI and logs its failure
func (a *App) execute(ctx context.Context) error {
	if err := a.cli.Run(ctx); err != nil {
		a.log.Error().Err(err).Msg("Application error")
		return err
	}

	return nil
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			app.cancel()

			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
