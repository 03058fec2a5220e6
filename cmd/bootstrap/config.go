package bootstrap

import (
	"time"

	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
		clock.NewRealClockIn,
	),
)

// NewLocation is the restaurant's zone; "today" and request timestamps use it.
func NewLocation(cfg config.Config) *time.Location {
	return cfg.Restaurant.Location()
}
