package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// UserHandler expone la gestión de usuarios del panel de administración.
type UserHandler struct {
	uc *usecase.UserUseCase
}

func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Add godoc
// @Summary      Crear un usuario (solo Admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/add-user [post]
func (h *UserHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapUserError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuarios paginados (solo Admin)
// @Tags         users
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/all-users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	items, err := h.uc.ListAll(c.Context(), page)
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(items)
}

// ListSupervisors godoc
// @Summary      Listar supervisores (solo Admin)
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/all-supervisors [get]
func (h *UserHandler) ListSupervisors(c *fiber.Ctx) error {
	return h.listRole(c, entity.RoleSupervisor)
}

// ListDataAgents godoc
// @Summary      Listar agentes de datos (solo Admin)
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/all-dataagents [get]
func (h *UserHandler) ListDataAgents(c *fiber.Ctx) error {
	return h.listRole(c, entity.RoleDataAgent)
}

// ListViewers godoc
// @Summary      Listar viewers (solo Admin)
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/all-viewers [get]
func (h *UserHandler) ListViewers(c *fiber.Ctx) error {
	return h.listRole(c, entity.RoleViewer)
}

func (h *UserHandler) listRole(c *fiber.Ctx, role string) error {
	items, err := h.uc.ListByRole(c.Context(), role)
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(items)
}

// Delete godoc
// @Summary      Eliminar un usuario por username (solo Admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteUserRequest  true  "username"
// @Success      204   "sin contenido"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/delete-user [post]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username es requerido"})
	}
	if err := h.uc.Delete(c.Context(), in.Username); err != nil {
		return mapUserError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func mapUserError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_TAKEN", Message: "el username ya está en uso"})
	case errors.Is(err, domain.ErrZoneHasSupervisor):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ZONE_HAS_SUPERVISOR", Message: "la zona ya tiene un supervisor asignado"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
