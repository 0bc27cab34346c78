package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/resqnet/internal/config"
	"github.com/shenikar/resqnet/internal/geo"
	v1 "github.com/shenikar/resqnet/internal/handler/http/v1"
	"github.com/shenikar/resqnet/internal/journal"
	"github.com/shenikar/resqnet/internal/repository"
	"github.com/shenikar/resqnet/internal/service"
	"github.com/shenikar/resqnet/internal/webhook"
	"github.com/shenikar/resqnet/pkg/logger"
	"github.com/shenikar/resqnet/pkg/metrics"
	"github.com/shenikar/resqnet/pkg/postgres"
	redisclient "github.com/shenikar/resqnet/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/resqnet/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// @title ResQNet Incident API
// @version 1.0
// @description Incident reporting, resolution, drills and helpers leaderboard.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsManager := metrics.NewManager()

	// Издатели событий: очередь Redis и журнал PostgreSQL, оба необязательны
	var publishers webhook.MultiPublisher
	var workerDone <-chan struct{}

	if cfg.JournalEnabled() {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		publishers = append(publishers, journal.NewPostgresJournal(dbpool))
	}

	if cfg.EventsEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publishers = append(publishers, webhook.NewRedisWebhookPublisher(redisClient))

		// Инициализация и запуск воркера вебхуков
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		workerDone = webhookWorker.Start(ctx)
	}

	var publisher webhook.WebhookPublisher = webhook.NoopPublisher{}
	if len(publishers) > 0 {
		publisher = publishers
	}

	// Состояние процесса: хранилища живут только в памяти и принадлежат main
	incidentRepo := repository.NewIncidentRepository()
	helperRepo := repository.NewHelperRepository(cfg.HelperNames)

	// Инициализация сервисов
	helperService := service.NewHelperService(helperRepo, log, metricsManager)
	incidentService := service.NewIncidentService(
		incidentRepo,
		helperService,
		geo.NewGeocoder(cfg.GeoSeed),
		log,
		cfg,
		publisher,
		service.WithMetrics(metricsManager),
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, helperService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metricsManager.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":      cfg.HTTPPort,
		"responder": cfg.ResponderName,
		"helpers":   cfg.HelperNames,
		"events":    cfg.EventsEnabled(),
		"journal":   cfg.JournalEnabled(),
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер до закрытия клиента Redis
	cancel()
	if workerDone != nil {
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
