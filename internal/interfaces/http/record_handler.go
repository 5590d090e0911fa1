package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/report"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// RecordHandler maneja los agregados diarios de un tipo de entidad. El router
// crea una instancia por kind (dailysales, cashpayments, digitalpayments,
// dailydamages) montada bajo su propio grupo de rutas.
type RecordHandler struct {
	kind     entity.RecordKind
	uc       *usecase.RecordUseCase
	reportUC *report.UseCase
}

// NewRecordHandler construye el handler de un kind.
func NewRecordHandler(kind entity.RecordKind, uc *usecase.RecordUseCase, reportUC *report.UseCase) *RecordHandler {
	return &RecordHandler{kind: kind, uc: uc, reportUC: reportUC}
}

// Add godoc
// @Summary      Crear o fusionar el registro de una fecha
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddRecordRequest  true  "date + outlets (damages para daños)"
// @Success      201   {object}  dto.UpsertResponse
// @Success      200   {object}  dto.UpsertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/{kind}/add [post]
func (h *RecordHandler) Add(c *fiber.Ctx) error {
	var in dto.AddRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, created, err := h.uc.UpsertByDate(c.Context(), h.kind, in)
	if err != nil {
		return h.mapError(c, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar todos los registros del tipo (fecha descendente)
// @Tags         records
// @Produce      json
// @Success      200  {array}  dto.RecordResponse
// @Router       /api/{kind}/all [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context(), h.kind)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      PATCH parcial de un registro por id
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "id del registro"
// @Param        body  body  dto.UpdateRecordRequest  true  "campos parciales"
// @Success      200   {object}  dto.RecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/{kind}/{id} [patch]
func (h *RecordHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), h.kind, c.Params("id"), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el histórico del tipo como .xlsx
// @Tags         records
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/{kind}/export [get]
func (h *RecordHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.reportUC.ExportKind(c.Context(), h.kind)
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(data)
}

// DailyReport godoc
// @Summary      PDF con el resumen de una fecha (ventas, pagos, daños, tarifa NECC)
// @Tags         records
// @Produce      application/pdf
// @Param        date  path  string  true  "fecha YYYY-MM-DD"
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dailysales/report/{date} [get]
func (h *RecordHandler) DailyReport(c *fiber.Ctx) error {
	date := c.Params("date")
	data, err := h.reportUC.DailyReport(c.Context(), date)
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=resumen-`+date+`.pdf`)
	return c.Send(data)
}

func (h *RecordHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date y el mapa de valores son requeridos"})
	case errors.Is(err, domain.ErrEntryLocked):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ENTRY_LOCKED", Message: "ya existe un registro para esa fecha y está bloqueado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro para esa fecha"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
