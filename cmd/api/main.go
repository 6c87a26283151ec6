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

	"github.com/jhoicas/sales-dashboard/internal/application/analytics"
	"github.com/jhoicas/sales-dashboard/internal/application/auth"
	"github.com/jhoicas/sales-dashboard/internal/application/inventory"
	"github.com/jhoicas/sales-dashboard/internal/application/report"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
	"github.com/jhoicas/sales-dashboard/internal/infrastructure/filestore"
	"github.com/jhoicas/sales-dashboard/internal/infrastructure/forecast"
	"github.com/jhoicas/sales-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/sales-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/sales-dashboard/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/sales-dashboard/internal/infrastructure/redis"
	"github.com/jhoicas/sales-dashboard/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/sales-dashboard/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/sales-dashboard/internal/interfaces/http"
	"github.com/jhoicas/sales-dashboard/pkg/config"
	"github.com/jhoicas/sales-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Str("sessions", cfg.App.SessionDriver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	accounts, closeAccounts := openAccounts(ctx, cfg, log)
	defer closeAccounts()
	sessions, closeSessions := openSessions(ctx, cfg, log)
	defer closeSessions()

	artifacts := filestore.New(cfg.Storage.DataDir, cfg.Storage.ReportsDir)

	authUC := auth.NewAuthUseCase(accounts, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	inventoryUC := inventory.NewInventoryUseCase(sessions, accounts, spreadsheet.NewExcelParser(), artifacts, log)
	dashboardUC := analytics.NewDashboardUseCase(sessions, forecast.NewRandomForecaster(), log)
	reportUC := report.NewReportUseCase(sessions, infrapdf.NewMarotoPDFGenerator(), artifacts, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true, // los strings parseados del body se guardan en los stores
		BodyLimit:    32 * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "Sales Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
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

// openAccounts abre el almacén de cuentas según STORE_DRIVER. La función devuelta libera la conexión.
func openAccounts(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.AccountRepository, func()) {
	switch cfg.App.StoreDriver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones PostgreSQL")
		}
		return postgres.NewAccountRepository(pool), pool.Close
	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path, log)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("apertura de SQLite")
		}
		return sqlite.NewAccountRepository(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	default:
		log.Warn().Msg("cuentas en memoria: se pierden al reiniciar")
		return memory.NewAccountRepository(), func() {}
	}
}

// openSessions abre el almacén de sesiones según SESSION_DRIVER.
func openSessions(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionRepository, func()) {
	if cfg.App.SessionDriver == config.SessionRedis {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		return infraredis.NewSessionRepository(rdb), func() { _ = rdb.Close() }
	}
	return memory.NewSessionRepository(), func() {}
}
