package metrics

import "go.uber.org/fx"

// Module provides the registry and every recorder built on it.
var Module = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		Registerer,
		NewOrderMetrics,
		NewWriteBehindMetrics,
		NewHTTPMetrics,
	),
)
