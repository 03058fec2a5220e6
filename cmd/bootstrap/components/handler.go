package components

import (
	"restaurant-booking/internal/handler"
	"restaurant-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTableHandler,
		api.NewReservationHandler,
		api.NewAnalyticsHandler,
		api.NewWorkflowHandler,
		func(
			tables *api.TableHandler,
			reservations *api.ReservationHandler,
			analytics *api.AnalyticsHandler,
			workflow *api.WorkflowHandler,
		) handler.Handlers {
			return handler.Handlers{
				Tables:       tables,
				Reservations: reservations,
				Analytics:    analytics,
				Workflow:     workflow,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
