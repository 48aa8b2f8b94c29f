package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davortega/bodega-equipos/internal/application/dto"
	"github.com/davortega/bodega-equipos/internal/application/ledger"
)

// LedgerHandler maneja las operaciones de stock: ingreso, egreso y devolución.
// Cada operación corre atómica en el caso de uso; aquí solo se parsean cuerpos
// y se presenta el snapshot resultante.
type LedgerHandler struct {
	uc *ledger.StockLedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.StockLedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RegisterIncome godoc
// @Summary      Registrar ingreso de material (servible o caducado)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del equipo"
// @Param        body  body  dto.RegisterIncomeRequest  true  "cantidad, tipo, observación"
// @Success      200   {object}  dto.EquipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/income [post]
func (h *LedgerHandler) RegisterIncome(c *fiber.Ctx) error {
	var in dto.RegisterIncomeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	equipment, err := h.uc.RegisterIncome(c.Context(), ledger.IncomeInput{
		EquipmentID:   c.Params("id"),
		Cantidad:      in.Cantidad,
		Tipo:          in.Tipo,
		Observacion:   in.Observacion,
		PerformedByID: GetUserID(c),
		BranchID:      GetBranchID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toEquipmentResponse(equipment))
}

// RegisterOutcome godoc
// @Summary      Registrar egreso de material (abre un préstamo)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del equipo"
// @Param        body  body  dto.RegisterOutcomeRequest  true  "cantidad, responsable, custodio"
// @Success      201   {object}  dto.OutcomeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/outcome [post]
func (h *LedgerHandler) RegisterOutcome(c *fiber.Ctx) error {
	var in dto.RegisterOutcomeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	equipment, loan, err := h.uc.RegisterOutcome(c.Context(), ledger.OutcomeInput{
		EquipmentID:               c.Params("id"),
		Cantidad:                  in.Cantidad,
		ResponsibleName:           in.ResponsibleName,
		ResponsibleIdentification: in.ResponsibleIdentification,
		ResponsibleArea:           in.ResponsibleArea,
		CustodianID:               in.CustodianID,
		Observacion:               in.Observacion,
		PerformedByID:             GetUserID(c),
		BranchID:                  GetBranchID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OutcomeResponse{
		Equipment:  toEquipmentResponse(equipment),
		LoanRecord: toLoanRecordResponse(loan),
	})
}

// RegisterReturn godoc
// @Summary      Registrar devolución de un préstamo
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del préstamo"
// @Param        body  body  dto.RegisterReturnRequest  true  "observación opcional"
// @Success      200   {object}  dto.ReturnResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/loans/{id}/return [post]
func (h *LedgerHandler) RegisterReturn(c *fiber.Ctx) error {
	var in dto.RegisterReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	equipment, loan, err := h.uc.RegisterReturn(c.Context(), ledger.ReturnInput{
		LoanRecordID:  c.Params("id"),
		Observacion:   in.Observacion,
		PerformedByID: GetUserID(c),
		BranchID:      GetBranchID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReturnResponse{
		Equipment:  toEquipmentResponse(equipment),
		LoanRecord: toLoanRecordResponse(loan),
	})
}
