package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/phonefixpro/phonefix-api/internal/application/auth"
	"github.com/phonefixpro/phonefix-api/internal/application/ledger"
	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
	infrapdf "github.com/phonefixpro/phonefix-api/internal/infrastructure/pdf"
	"github.com/phonefixpro/phonefix-api/internal/infrastructure/postgres"
	httpRouter "github.com/phonefixpro/phonefix-api/internal/interfaces/http"
	"github.com/phonefixpro/phonefix-api/pkg/config"
	"github.com/phonefixpro/phonefix-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool; el ledger crea los suyos atados a cada tx.
	itemRepo := postgres.NewItemRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	phoneRepo := postgres.NewPhoneRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	saleLedger := ledger.NewSaleLedger(txRunner, itemRepo)

	itemUC := usecase.NewItemUseCase(itemRepo, invRepo)
	inventoryUC := usecase.NewInventoryUseCase(reportRepo, txRunner)
	saleUC := usecase.NewSaleUseCase(saleLedger, saleRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	phoneUC := usecase.NewPhoneUseCase(phoneRepo)
	dashboardUC := usecase.NewDashboardUseCase(reportRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := usecase.NewReceiptUseCase(saleRepo, receiptGenerator)

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
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PhoneFix Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ItemUC:      itemUC,
		InventoryUC: inventoryUC,
		SaleUC:      saleUC,
		ReceiptUC:   receiptUC,
		CustomerUC:  customerUC,
		PhoneUC:     phoneUC,
		DashboardUC: dashboardUC,
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
