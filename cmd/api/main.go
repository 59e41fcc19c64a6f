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
	"github.com/tu-usuario/resto-pos/internal/application/ports"
	"github.com/tu-usuario/resto-pos/internal/application/usecase"
	"github.com/tu-usuario/resto-pos/internal/infrastructure/notify"
	"github.com/tu-usuario/resto-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/resto-pos/internal/interfaces/http"
	"github.com/tu-usuario/resto-pos/pkg/config"
	"github.com/tu-usuario/resto-pos/pkg/logger"
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

	txRunner := postgres.NewTxRunner(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool, txRunner)
	locationRepo := postgres.NewLocationRepository(pool, txRunner)

	// Notificador: broker AMQP si está configurado, si no el log estructurado.
	var notifier ports.Notifier = notify.NewLogNotifier(log)
	if cfg.AMQP.URL != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer amqpNotifier.Close()
		notifier = amqpNotifier
	}

	settingsUC := usecase.NewSettingsUseCase(settingsRepo, accountRepo, locationRepo, notifier)
	if err := settingsUC.Bootstrap(); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos iniciales")
	}

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
		Title:    "RestoPOS Settings API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SettingsUC: settingsUC,
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
