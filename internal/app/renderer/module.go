package renderer

import "go.uber.org/fx"

// Module provides the media renderer
var Module = fx.Options(
	fx.Provide(NewRenderer),
)
