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
	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/portal"
	"github.com/jhoicas/Activos-api/internal/application/requests"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Activos-api/internal/interfaces/http"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	// Repositorios sobre el pool (las transacciones crean los suyos propios)
	categoryRepo := postgres.NewAssetCategoryRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	movementRepo := postgres.NewAssetMovementRepository(pool)
	requestRepo := postgres.NewAssetRequestRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	seqRepo := postgres.NewSequenceRepository(pool)
	doctorRepo := postgres.NewDoctorRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	diseaseRepo := postgres.NewDiseaseRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	reassignUC := assets.NewReassignUseCase(txRunner, assetRepo, employeeRepo)
	assetUC := assets.NewAssetUseCase(assetRepo, categoryRepo, movementRepo, requestRepo, seqRepo, reassignUC)
	requestUC := requests.NewRequestUseCase(txRunner, requestRepo, assetRepo, employeeRepo, userRepo)
	portalUC := portal.NewPortalUseCase(
		assetRepo, requestRepo, auditRepo, categoryRepo, requestUC,
		cfg.Portal.TokenSecret, cfg.Portal.PageSize,
	)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, assetRepo)
	doctorUC := usecase.NewDoctorUseCase(doctorRepo)
	patientUC := usecase.NewPatientUseCase(patientRepo, doctorRepo, diseaseRepo)
	diseaseUC := usecase.NewDiseaseUseCase(diseaseRepo)
	visitUC := usecase.NewVisitUseCase(visitRepo, patientRepo, doctorRepo, seqRepo)
	authUC := auth.NewUseCase(userRepo, employeeRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

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
		Title:    "Activos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		AssetUC:    assetUC,
		RequestUC:  requestUC,
		PortalUC:   portalUC,
		DoctorUC:   doctorUC,
		PatientUC:  patientUC,
		DiseaseUC:  diseaseUC,
		VisitUC:    visitUC,
		JWTSecret:  cfg.JWT.Secret,
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
