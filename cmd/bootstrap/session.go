package bootstrap

import (
	"errors"

	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionSigner,
	),
)

func NewSessionSigner(cfg config.Config, clk clock.Clock) (*jwt.SessionSigner, error) {
	if cfg.Session.TTL <= 0 {
		return nil, errors.New("invalid SESSION_TTL: must be positive")
	}
	if cfg.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET must not be empty")
	}
	return jwt.NewSessionSigner(cfg.Session.Secret, cfg.Session.TTL, clk), nil
}
