package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain"
)

// OutletHandler maneja el registro de outlets y su consulta por zona.
type OutletHandler struct {
	uc *usecase.OutletUseCase
}

func NewOutletHandler(uc *usecase.OutletUseCase) *OutletHandler {
	return &OutletHandler{uc: uc}
}

// Add godoc
// @Summary      Registrar un outlet
// @Tags         outlets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutletRequest  true  "outlet"
// @Success      201   {object}  dto.OutletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/outlet/add [post]
func (h *OutletHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), CallerFrom(c), in)
	if err != nil {
		return mapOutletError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar todos los outlets
// @Tags         outlets
// @Produce      json
// @Success      200  {array}  dto.OutletResponse
// @Router       /api/outlet/all [get]
func (h *OutletHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapOutletError(c, err)
	}
	return c.JSON(items)
}

// ListByZone godoc
// @Summary      Listar outlets de una zona (nombre de zona laxo)
// @Tags         outlets
// @Produce      json
// @Param        zoneId     path   string  true   "zona, p.ej. 'Zone 1' o 'zone1'"
// @Param        createdBy  query  string  false  "filtrar por agente creador"
// @Success      200  {array}  dto.OutletResponse
// @Router       /api/outlet/zone/{zoneId} [get]
func (h *OutletHandler) ListByZone(c *fiber.Ctx) error {
	items, err := h.uc.ListByZone(c.Context(), CallerFrom(c), c.Params("zoneId"), c.Query("createdBy"))
	if err != nil {
		return mapOutletError(c, err)
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      PATCH parcial de un outlet
// @Tags         outlets
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "id del outlet"
// @Param        body  body  dto.UpdateOutletRequest  true  "campos parciales"
// @Success      200   {object}  dto.OutletResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/outlet/{id} [patch]
func (h *OutletHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), CallerFrom(c), c.Params("id"), in)
	if err != nil {
		return mapOutletError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un outlet
// @Tags         outlets
// @Produce      json
// @Param        id  path  string  true  "id del outlet"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outlet/{id} [delete]
func (h *OutletHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CallerFrom(c), c.Params("id")); err != nil {
		return mapOutletError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func mapOutletError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la zona del outlet no corresponde a tu zona"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un outlet con ese id"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
