package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/eggbucket/eggbucket-api/internal/application/auth"
	"github.com/eggbucket/eggbucket-api/internal/application/report"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/infrastructure/cache"
	"github.com/eggbucket/eggbucket-api/internal/infrastructure/excel"
	infrapdf "github.com/eggbucket/eggbucket-api/internal/infrastructure/pdf"
	"github.com/eggbucket/eggbucket-api/internal/infrastructure/postgres"
	httpRouter "github.com/eggbucket/eggbucket-api/internal/interfaces/http"
	"github.com/eggbucket/eggbucket-api/pkg/config"
	"github.com/eggbucket/eggbucket-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	recordRepo := postgres.NewDailyRecordRepository(pool)
	outletRepo := postgres.NewOutletRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	rateRepo := postgres.NewEggRateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de outlets: Redis si hay Addr configurado, Noop si no.
	var outletCache cache.OutletCache = cache.NoopOutletCache{}
	if cfg.Redis.Addr != "" {
		outletCache = cache.NewRedisOutletCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de outlets en Redis")
	}

	recordUC := usecase.NewRecordUseCase(recordRepo, txRunner, postgres.IsTransient)
	outletUC := usecase.NewOutletUseCase(outletRepo, outletCache, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	rateUC := usecase.NewRateUseCase(rateRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	reportUC := report.NewUseCase(recordRepo, rateRepo, excel.NewRecordExporter(), infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, userUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Egg Bucket API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordUC:  recordUC,
		OutletUC:  outletUC,
		RateUC:    rateUC,
		UserUC:    userUC,
		ReportUC:  reportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
