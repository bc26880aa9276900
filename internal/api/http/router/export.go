package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estagiotrack/estagio_backend/internal/api/http/handler"
)

func (r *Router) registerExportRoutes(api fiber.Router, h *handler.ExportHandler) {
	api.Get("/exportar", h.ExportCSV)
}
