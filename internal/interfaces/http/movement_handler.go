package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davortega/bodega-equipos/internal/application/dto"
	"github.com/davortega/bodega-equipos/internal/application/reports"
	"github.com/davortega/bodega-equipos/internal/application/usecase"
)

// MovementHandler maneja las consultas del historial de movimientos y el
// reporte PDF (protegido).
type MovementHandler struct {
	uc     *usecase.MovementQueryUseCase
	report *reports.MovementReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementQueryUseCase, report *reports.MovementReportUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, report: report}
}

// List godoc
// @Summary      Listar historial de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        equipment_id  query  string  false  "Filtrar por equipo"
// @Param        from          query  string  false  "Fecha inicial (RFC3339)"
// @Param        to            query  string  false  "Fecha final (RFC3339)"
// @Param        limit         query  int     false  "Tamaño de página (default 20)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "formato de fecha inválido, use RFC3339"})
	}
	items, err := h.uc.List(c.Query("equipment_id"), GetBranchID(c), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementList(items, page.Limit, page.Offset))
}

// Report godoc
// @Summary      Reporte PDF del historial de movimientos de la sucursal
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "Fecha inicial (RFC3339)"
// @Param        to    query  string  false  "Fecha final (RFC3339)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/report [get]
func (h *MovementHandler) Report(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "formato de fecha inválido, use RFC3339"})
	}
	pdfBytes, err := h.report.Generate(c.Context(), GetBranchID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="movimientos.pdf"`)
	return c.Send(pdfBytes)
}

// parseDateRange parsea from/to del query en RFC3339; ambos son opcionales.
func parseDateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if raw := c.Query("from"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}
