package handler

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/estagiotrack/estagio_backend/internal/service/estagiario"
)

type ExportHandler struct {
	svc estagiario.Service
}

func NewExportHandler(svc estagiario.Service) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportCSV streams one aggregated row per intern as a CSV download.
func (h *ExportHandler) ExportCSV(c fiber.Ctx) error {
	rows, err := h.svc.ExportRows(c.Context())
	if err != nil {
		slog.Error("csv export failed", "error", err)
		return internalError(c)
	}

	var buf bytes.Buffer
	// UTF-8 BOM so spreadsheet apps detect the encoding
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"name", "email", "totalHours", "remainderMinutes"})
	for _, row := range rows {
		_ = w.Write([]string{
			row.Name,
			row.Email,
			strconv.Itoa(row.TotalHours),
			strconv.Itoa(row.RemainderMinutes),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		slog.Error("csv export failed", "error", err)
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estagiarios.csv"`)
	return c.Send(buf.Bytes())
}
