package navigator

import "go.uber.org/fx"

// Module provides the session navigator
var Module = fx.Options(
	fx.Provide(
		NewNavigator,
	),
)
