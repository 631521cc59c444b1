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
	"github.com/spf13/cobra"

	"github.com/shenikar/dispatch_system/internal/config"
	v1 "github.com/shenikar/dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/dispatch_system/internal/live"
	"github.com/shenikar/dispatch_system/internal/repository"
	"github.com/shenikar/dispatch_system/internal/service"
	"github.com/shenikar/dispatch_system/internal/webhook"
	"github.com/shenikar/dispatch_system/pkg/logger"
	"github.com/shenikar/dispatch_system/pkg/postgres"
	redisclient "github.com/shenikar/dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	respondersFile string
	migrationsDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dispatch HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	serveCmd.Flags().StringVar(&respondersFile, "responders", "", "responder seed file (overrides RESPONDERS_FILE)")
	serveCmd.Flags().StringVar(&migrationsDir, "migrations", "migrations", "directory with audit journal migrations")
}

func runMigrations(databaseURL string, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := databaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New("file://"+migrationsDir, migrationURL)
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

func serve() error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if respondersFile != "" {
		cfg.RespondersFile = respondersFile
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seed, err := repository.LoadResponders(cfg.RespondersFile)
	if err != nil {
		return fmt.Errorf("failed to load responders: %w", err)
	}
	log.WithField("count", len(seed)).Info("Responder directory loaded")

	// Журнал аудита в PostgreSQL подключается только при заданном DATABASE_URL
	journal := repository.NewNopAuditRepository()
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg.DatabaseURL, log); err != nil {
			return err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer dbpool.Close()
		journal = repository.NewAuditRepository(dbpool)
		log.Info("Successfully connected to PostgreSQL")
	}

	// Живая лента всегда доступна, очередь вебхуков - при заданном REDIS_ADDR
	hub := live.NewHub(log)
	publishers := []webhook.WebhookPublisher{hub}
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publishers = append(publishers, webhook.NewRedisWebhookPublisher(redisClient))
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	}

	scheduler := service.NewTimerScheduler()
	defer scheduler.Stop()

	// Инициализация сервисов
	incidentService := service.NewIncidentService(
		repository.NewIncidentRepository(),
		repository.NewResponderRepository(seed),
		scheduler,
		webhook.NewMultiPublisher(publishers...),
		journal,
		log,
		cfg,
	)
	defer incidentService.Close()

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serverErr:
		return fmt.Errorf("error starting HTTP server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}
