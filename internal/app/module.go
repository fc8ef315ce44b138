package app

import (
	"go.uber.org/fx"

	"memeview/internal/app/cli"
	"memeview/internal/app/fetcher"
	"memeview/internal/app/monitor"
	"memeview/internal/app/navigator"
	"memeview/internal/app/renderer"
	"memeview/internal/app/telemetry"
	"memeview/internal/app/ui/wire"
)

var Module = fx.Options(
	telemetry.Module,
	fetcher.Module,
	renderer.Module,
	monitor.Module,
	navigator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
