package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"github.com/estagiotrack/estagio_backend/config"
	"github.com/estagiotrack/estagio_backend/internal/api/http/handler"
	"github.com/estagiotrack/estagio_backend/internal/service/estagiario"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Mongo         *mongo.Client
	EstagiarioSvc estagiario.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	estagiarioH := handler.NewEstagiarioHandler(r.p.EstagiarioSvc)
	exportH := handler.NewExportHandler(r.p.EstagiarioSvc)

	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bem-vindo à API"})
	})

	api := app.Group("/api")

	// 3. Delegate to sub-files
	r.registerEstagiarioRoutes(api, estagiarioH)
	r.registerExportRoutes(api, exportH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.Mongo.Ping(c.Context(), readpref.Primary()) == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
