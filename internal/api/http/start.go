package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/estagiotrack/estagio_backend/config"
	"github.com/estagiotrack/estagio_backend/internal/api/http/router"
	"github.com/estagiotrack/estagio_backend/internal/app"
)

// Start assembles the fx graph and runs the HTTP server until shutdown.
func Start(cfg *config.Config, shutdownTimeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces its construction, which registers
		// the OnStart listen hook.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(shutdownTimeout),
	).Run()
}
