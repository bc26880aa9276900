package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/estagiotrack/estagio_backend/internal/service/estagiario"
	"github.com/estagiotrack/estagio_backend/internal/timesheet"
)

type EstagiarioHandler struct {
	svc estagiario.Service
}

func NewEstagiarioHandler(svc estagiario.Service) *EstagiarioHandler {
	return &EstagiarioHandler{svc: svc}
}

func mapEstagiarioError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, estagiario.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, estagiario.ErrMissingField),
		errors.Is(err, timesheet.ErrMissingField),
		errors.Is(err, timesheet.ErrInvalidRange),
		errors.Is(err, timesheet.ErrDuplicateShift):
		return badRequest(c, err.Error())
	case errors.Is(err, estagiario.ErrEmailTaken):
		return conflict(c, err.Error())
	default:
		slog.Error("estagiario request failed", "error", err)
		return internalError(c)
	}
}

func (h *EstagiarioHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	intern, err := h.svc.Register(c.Context(), estagiario.RegisterRequest{
		Name:  body.Name,
		Email: body.Email,
	})
	if err != nil {
		return mapEstagiarioError(c, err)
	}
	return created(c, intern)
}

func (h *EstagiarioHandler) List(c fiber.Ctx) error {
	interns, err := h.svc.List(c.Context())
	if err != nil {
		return mapEstagiarioError(c, err)
	}
	return ok(c, interns)
}

func (h *EstagiarioHandler) Get(c fiber.Ctx) error {
	intern, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapEstagiarioError(c, err)
	}
	return ok(c, intern)
}

func (h *EstagiarioHandler) Delete(c fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapEstagiarioError(c, err)
	}
	return noContent(c)
}

func (h *EstagiarioHandler) ListHours(c fiber.Ctx) error {
	entries, err := h.svc.ListHours(c.Context(), c.Params("id"))
	if err != nil {
		return mapEstagiarioError(c, err)
	}
	return ok(c, entries)
}

func (h *EstagiarioHandler) AddHours(c fiber.Ctx) error {
	var body struct {
		Date      string `json:"date"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	intern, err := h.svc.AddHours(c.Context(), c.Params("id"), estagiario.AddHoursRequest{
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		return mapEstagiarioError(c, err)
	}
	return created(c, intern)
}

func (h *EstagiarioHandler) RemoveHours(c fiber.Ctx) error {
	intern, err := h.svc.RemoveHours(c.Context(), c.Params("id"), c.Params("entryID"))
	if err != nil {
		return mapEstagiarioError(c, err)
	}
	return ok(c, intern)
}
