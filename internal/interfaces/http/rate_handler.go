package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain"
)

// RateHandler maneja la tarifa NECC publicada por el administrador.
type RateHandler struct {
	uc *usecase.RateUseCase
}

func NewRateHandler(uc *usecase.RateUseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Add godoc
// @Summary      Publicar la tarifa NECC de una fecha
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRateRequest  true  "fecha + tarifa"
// @Success      201   {object}  dto.RateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/neccrate/add [post]
func (h *RateHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapRateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar las tarifas NECC (fecha descendente)
// @Tags         rates
// @Produce      json
// @Success      200  {array}  dto.RateResponse
// @Router       /api/neccrate/all [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapRateError(c, err)
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      PATCH de una tarifa NECC
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id de la tarifa"
// @Param        body  body  dto.UpdateRateRequest  true  "campos parciales"
// @Success      200   {object}  dto.RateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/neccrate/{id} [patch]
func (h *RateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapRateError(c, err)
	}
	return c.JSON(out)
}

func mapRateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarifa no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
