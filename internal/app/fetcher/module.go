package fetcher

import "go.uber.org/fx"

// Module provides the item fetcher
var Module = fx.Options(
	fx.Provide(NewFetcher),
)
