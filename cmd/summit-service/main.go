package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Onahi7/Napps-summit/internal/config"
	"github.com/Onahi7/Napps-summit/internal/delivery/http/handlers"
	"github.com/Onahi7/Napps-summit/internal/delivery/http/routes"
	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/cache"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/kafka"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/mailer"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/metrics"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/migrate"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/repository"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/providers"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/syncclient"
	"github.com/Onahi7/Napps-summit/internal/usecase/payment"
	"github.com/Onahi7/Napps-summit/internal/usecase/validation"
	"github.com/Onahi7/Napps-summit/internal/usecase/webhook"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.SummitDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.SummitDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repos
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	registrationRepo := repository.NewDefaultRegistrationRepository(db)
	refundRepo := repository.NewDefaultRefundRepository(db)
	configRepo := repository.NewDefaultProviderConfigRepository(db)
	validationRepo := repository.NewDefaultValidationRepository(db)

	// Provider registry with optional Redis config cache
	var configCache *cache.ConfigCache
	if cfg.RedisCache.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisCache.Addr, cfg.RedisCache.Password, cfg.RedisCache.DB)
		if err != nil {
			slog.Warn("redis unavailable, provider configs served from db", "error", err.Error())
		} else {
			configCache = cache.NewConfigCache(redisClient, time.Duration(cfg.RedisCache.TTLSec)*time.Second)
		}
	}
	registry := providers.NewRegistry(configRepo, configCache)

	// Payment event stream
	var publisher payment.EventPublisher
	if cfg.KafkaService.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		kafkaPublisher := kafka.NewPaymentEventPublisher(brokers, cfg.KafkaService.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Confirmation mailer
	var confirmationMailer payment.ConfirmationSender
	if cfg.MailerService.Host != "" {
		confirmationMailer = mailer.NewMailer(
			fmt.Sprintf("http://%s:%s", cfg.MailerService.Host, cfg.MailerService.Port),
			cfg.MailerService.From,
		)
	}

	paymentMetrics := metrics.NewPaymentMetrics()

	// Init usecases
	paymentUC := payment.NewDefaultPaymentUsecase(
		transactionRepo,
		registrationRepo,
		refundRepo,
		registry,
		publisher,
		confirmationMailer,
		paymentMetrics,
	)
	webhookUC := webhook.NewDefaultWebhookUsecase(registry, paymentUC, paymentMetrics)

	var push validation.PushFunc
	if cfg.Validation.SyncURL != "" {
		upstream := syncclient.NewClient(cfg.Validation.SyncURL)
		push = upstream.Push
	} else {
		// this instance is the upstream: pushing means absorbing locally
		push = func(records []*domain.MealValidation) ([]string, error) {
			return validationRepo.UpsertValidations(records)
		}
	}
	validationUC := validation.NewDefaultValidationUsecase(
		validationRepo,
		push,
		time.Duration(cfg.Validation.RetentionDays)*24*time.Hour,
		paymentMetrics,
	)

	// Metrics endpoint
	go func() {
		metricsAddr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Printf("metrics server started on %s\n", metricsAddr)
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			slog.Error("metrics server stopped", "error", err.Error())
		}
	}()

	// Periodic validation sync
	if cfg.Validation.SyncURL != "" {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Validation.SyncIntervalSec) * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				if _, err := validationUC.Sync(); err != nil {
					slog.Error("validation sync failed", "error", err.Error())
				}
			}
		}()
	}

	// Daily retention sweep
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := validationUC.Retention()
			if err != nil {
				slog.Error("validation retention failed", "error", err.Error())
				continue
			}
			slog.Info("validation retention sweep", "deleted", deleted)
		}
	}()

	// HTTP server
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Register(app, routes.Handlers{
		Webhook:    handlers.NewWebhookHandler(webhookUC),
		Payment:    handlers.NewPaymentHandler(paymentUC),
		Validation: handlers.NewValidationHandler(validationUC),
		Config:     handlers.NewConfigHandler(configRepo, registry),
	}, fmt.Sprintf("http://%s:%s", cfg.AuthService.Host, cfg.AuthService.Port))

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("http server started on %s\n", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.SummitConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
