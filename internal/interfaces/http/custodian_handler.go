package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davortega/bodega-equipos/internal/application/dto"
	"github.com/davortega/bodega-equipos/internal/application/usecase"
)

// CustodianHandler maneja las peticiones HTTP de custodios (protegido).
type CustodianHandler struct {
	uc *usecase.CustodianUseCase
}

// NewCustodianHandler construye el handler.
func NewCustodianHandler(uc *usecase.CustodianUseCase) *CustodianHandler {
	return &CustodianHandler{uc: uc}
}

func (h *CustodianHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustodianRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	custodian, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCustodianResponse(custodian))
}

func (h *CustodianHandler) GetByID(c *fiber.Ctx) error {
	custodian, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCustodianResponse(custodian))
}

func (h *CustodianHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustodianRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	custodian, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCustodianResponse(custodian))
}

// List lista custodios; ?active=true devuelve solo los activos.
func (h *CustodianHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	onlyActive := c.Query("active") == "true"
	items, err := h.uc.List(onlyActive, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.CustodianListResponse{
		Items: make([]dto.CustodianResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, cu := range items {
		out.Items = append(out.Items, toCustodianResponse(cu))
	}
	return c.JSON(out)
}

func (h *CustodianHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "custodio eliminado"})
}
