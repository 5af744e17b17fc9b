package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/auth"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/usecase"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/infrastructure/mailer"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/infrastructure/postgres"
	httpRouter "github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/interfaces/http"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/config"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/filecheck"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("loading configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	// Outbound mail is optional; without SMTP settings the send-email
	// routes report a configuration error instead of dialing.
	var mail usecase.Mailer
	if smtp := mailer.NewSMTPMailer(cfg.SMTP); smtp != nil {
		mail = smtp
	}

	companyUC := usecase.NewCompanyUseCase(companyRepo, mail)
	contactUC := usecase.NewContactUseCase(contactRepo, companyRepo, mail)
	dealUC := usecase.NewDealUseCase(dealRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, cfg.Import.DefaultPassword)
	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Import.MaxUploadBytes) + 1<<20,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		ContactUC:  contactUC,
		DealUC:     dealUC,
		EmployeeUC: employeeUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
		Upload: filecheck.Options{
			MaxSizeBytes: cfg.Import.MaxUploadBytes,
			Accept:       ".csv",
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
