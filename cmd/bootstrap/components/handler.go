package components

import (
	"hooklens/internal/handler"
	"hooklens/internal/handler/api"
	"hooklens/internal/handler/middleware"
	"hooklens/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger {
			return middleware.NewLogger(cfg.Log)
		},
		api.NewEndpointHandler,
		api.NewRequestHandler,
		api.NewAnalyticsHandler,
		api.NewCaptureHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
