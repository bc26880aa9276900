package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estagiotrack/estagio_backend/internal/api/http/handler"
)

func (r *Router) registerEstagiarioRoutes(api fiber.Router, h *handler.EstagiarioHandler) {
	estagiarios := api.Group("/estagiarios")

	estagiarios.Post("/", h.Create)
	estagiarios.Get("/", h.List)
	estagiarios.Get("/:id", h.Get)
	estagiarios.Delete("/:id", h.Delete)

	// logged work hours, nested under the owning intern
	estagiarios.Get("/:id/horas", h.ListHours)
	estagiarios.Post("/:id/horas", h.AddHours)
	estagiarios.Delete("/:id/horas/:entryID", h.RemoveHours)
}
