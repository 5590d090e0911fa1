package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// AdminHandler agrupa operaciones administrativas que cruzan agregados,
// hoy solo el remapeo del histórico al padrón de outlets activos.
type AdminHandler struct {
	records *usecase.RecordUseCase
	outlets *usecase.OutletUseCase
}

func NewAdminHandler(records *usecase.RecordUseCase, outlets *usecase.OutletUseCase) *AdminHandler {
	return &AdminHandler{records: records, outlets: outlets}
}

// Remap godoc
// @Summary      Reproyectar el histórico de un tipo al padrón de outlets activos
// @Description  Cada registro queda exactamente con los outlets activos; los
// @Description  nuevos entran en cero y los retirados se descartan.
// @Tags         admin
// @Produce      json
// @Param        kind  path  string  true  "dailysales | cashpayments | digitalpayments | dailydamages"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/remap/{kind} [post]
func (h *AdminHandler) Remap(c *fiber.Ctx) error {
	kind := entity.RecordKind(c.Params("kind"))
	if _, ok := entity.Kinds[kind]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de registro desconocido"})
	}
	names, err := h.outlets.ActiveOutletNames(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	updated, err := h.records.RemapToOutlets(c.Context(), kind, names)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"updated": updated})
}
