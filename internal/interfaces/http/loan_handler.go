package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davortega/bodega-equipos/internal/application/dto"
	"github.com/davortega/bodega-equipos/internal/application/usecase"
)

// LoanHandler maneja las consultas de préstamos (protegido). Las escrituras
// pasan por LedgerHandler.
type LoanHandler struct {
	uc *usecase.LoanQueryUseCase
}

// NewLoanHandler construye el handler.
func NewLoanHandler(uc *usecase.LoanQueryUseCase) *LoanHandler {
	return &LoanHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener un préstamo
// @Tags         loans
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del préstamo"
// @Success      200  {object}  dto.LoanRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/loans/{id} [get]
func (h *LoanHandler) GetByID(c *fiber.Ctx) error {
	loan, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toLoanRecordResponse(loan))
}

// List godoc
// @Summary      Listar préstamos
// @Tags         loans
// @Security     Bearer
// @Produce      json
// @Param        equipment_id  query  string  false  "Filtrar por equipo"
// @Param        status        query  string  false  "prestado | devuelto"
// @Param        limit         query  int     false  "Tamaño de página (default 20)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.LoanRecordListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	items, err := h.uc.List(c.Query("equipment_id"), GetBranchID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toLoanRecordList(items, page.Limit, page.Offset))
}
