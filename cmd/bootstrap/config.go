package bootstrap

import (
	"hooklens/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ServerConfig { return cfg.Server },
		func(cfg config.Config) config.CaptureConfig { return cfg.Capture },
		func(cfg config.Config) config.SweepConfig { return cfg.Sweep },
		func(cfg config.Config) config.QueueConfig { return cfg.Queue },
		func(cfg config.Config) config.ExportConfig { return cfg.Export },
	),
)
