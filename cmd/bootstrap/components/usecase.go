package components

import (
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/workflow"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseWorkflowModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewSectionQueries,
		queries.NewReservationQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseWorkflowModule = fx.Module("usecase/workflow",
	fx.Provide(
		workflow.NewMachine,
	),
)
