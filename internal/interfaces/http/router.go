package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eggbucket/eggbucket-api/internal/application/auth"
	"github.com/eggbucket/eggbucket-api/internal/application/report"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordUC  *usecase.RecordUseCase
	OutletUC  *usecase.OutletUseCase
	RateUC    *usecase.RateUseCase
	UserUC    *usecase.UserUseCase
	ReportUC  *report.UseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canRead := RequireRole(entity.RoleAdmin, entity.RoleSupervisor, entity.RoleDataAgent, entity.RoleViewer)
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleSupervisor, entity.RoleDataAgent)
	canEdit := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Registros diarios: un grupo por tipo, mismas rutas.
	for _, kind := range []entity.RecordKind{
		entity.KindDailySales,
		entity.KindCashPayments,
		entity.KindDigitalPayments,
		entity.KindDailyDamages,
	} {
		g := protected.Group("/" + string(kind))
		h := NewRecordHandler(kind, deps.RecordUC, deps.ReportUC)
		g.Post("/add", canWrite, h.Add)
		g.Get("/all", canRead, h.List)
		g.Get("/export", canRead, h.Export)
		g.Patch("/:id", canEdit, h.Update)
	}

	// Resumen diario en PDF, colgado del grupo de ventas.
	reportHandler := NewRecordHandler(entity.KindDailySales, deps.RecordUC, deps.ReportUC)
	protected.Get("/dailysales/report/:date", canRead, reportHandler.DailyReport)

	// Outlets (protegido)
	outlets := protected.Group("/outlet")
	outletHandler := NewOutletHandler(deps.OutletUC)
	outlets.Post("/add", canWrite, outletHandler.Add)
	outlets.Get("/all", canRead, outletHandler.List)
	outlets.Get("/zone/:zoneId", canRead, outletHandler.ListByZone)
	outlets.Patch("/:id", canEdit, outletHandler.Update)
	outlets.Delete("/:id", canEdit, outletHandler.Delete)

	// Tarifa NECC (lectura general, escritura solo admin)
	rates := protected.Group("/neccrate")
	rateHandler := NewRateHandler(deps.RateUC)
	rates.Get("/all", canRead, rateHandler.List)
	rates.Post("/add", adminOnly, rateHandler.Add)
	rates.Patch("/:id", adminOnly, rateHandler.Update)

	// Administración (solo Admin)
	admin := protected.Group("/admin", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	admin.Post("/add-user", userHandler.Add)
	admin.Get("/all-users", userHandler.List)
	admin.Get("/all-supervisors", userHandler.ListSupervisors)
	admin.Get("/all-dataagents", userHandler.ListDataAgents)
	admin.Get("/all-viewers", userHandler.ListViewers)
	admin.Post("/delete-user", userHandler.Delete)

	adminHandler := NewAdminHandler(deps.RecordUC, deps.OutletUC)
	admin.Post("/remap/:kind", adminHandler.Remap)
}
