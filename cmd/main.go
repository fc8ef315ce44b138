package main

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"memeview/internal/app"
	"memeview/internal/app/cli"
	"memeview/internal/app/errors"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	tui := opts.Type == cli.CommandBrowse

	output, err := logger.Output(cfg, tui)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	log := logger.NewLoggerWithOutput(cfg, output)
	warnUnknownKeys(cfg, log)

	application := createApp(cfg, opts, log, tui)
	application.Run()
}

// loadConfig reads the config and applies command-line overrides
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if opts.Type == cli.CommandHelp || opts.Type == cli.CommandVersion {
			return config.DefaultConfig(), nil
		}

		return nil, err
	}

	opts.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// warnUnknownKeys reports config keys that are not recognised
func warnUnknownKeys(cfg *config.Config, log logger.Logger) {
	for _, key := range cfg.Unknown {
		log.Warn().Msgf("Unknown key '%s' in %s", key, config.FileName)
	}
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options, log logger.Logger, tui bool) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg, tui)),
		fx.StopTimeout(config.ShutdownTimeout),
		fx.Supply(cfg, opts),
		fx.Provide(func() logger.Logger {
			return log
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config, tui bool) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel && !tui {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
