package components

import (
	"hooklens/internal/pkg/clock"
	"hooklens/internal/usecase/commands"
	"hooklens/internal/usecase/queries"
	"hooklens/internal/usecase/tasks"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	tasks.NewHandlers,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEndpointCommands,
		commands.NewCaptureCommands,
		commands.NewSweepCommands,
		commands.NewExportCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEndpointQueries,
		queries.NewRequestQueries,
		queries.NewAnalyticsQueries,
	),
)
