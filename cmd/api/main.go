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

	"github.com/davortega/bodega-equipos/internal/application/auth"
	"github.com/davortega/bodega-equipos/internal/application/ledger"
	"github.com/davortega/bodega-equipos/internal/application/reports"
	"github.com/davortega/bodega-equipos/internal/application/usecase"
	infrapdf "github.com/davortega/bodega-equipos/internal/infrastructure/pdf"
	"github.com/davortega/bodega-equipos/internal/infrastructure/postgres"
	httpRouter "github.com/davortega/bodega-equipos/internal/interfaces/http"
	"github.com/davortega/bodega-equipos/pkg/config"
	"github.com/davortega/bodega-equipos/pkg/logger"
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

	equipmentRepo := postgres.NewEquipmentRepository(pool)
	loanRepo := postgres.NewLoanRecordRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	custodianRepo := postgres.NewCustodianRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewStockLedgerUseCase(txRunner)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, loanRepo, custodianRepo)
	loanUC := usecase.NewLoanQueryUseCase(loanRepo)
	movementUC := usecase.NewMovementQueryUseCase(movementRepo)
	custodianUC := usecase.NewCustodianUseCase(custodianRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	// PDF: reporte de historial de movimientos por sucursal
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewMovementReportUseCase(movementRepo, equipmentRepo, branchRepo, reportGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Bodega Equipos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EquipmentUC: equipmentUC,
		LedgerUC:    ledgerUC,
		LoanUC:      loanUC,
		MovementUC:  movementUC,
		ReportUC:    reportUC,
		CustodianUC: custodianUC,
		BranchUC:    branchUC,
		UserUC:      userUC,
		JWTSecret:   cfg.JWT.Secret,
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
