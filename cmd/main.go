package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/prediction-game/catalog"
	"github.com/Dosada05/prediction-game/config"
	"github.com/Dosada05/prediction-game/db"
	"github.com/Dosada05/prediction-game/handlers"
	"github.com/Dosada05/prediction-game/live"
	"github.com/Dosada05/prediction-game/repositories"
	api "github.com/Dosada05/prediction-game/routes"
	"github.com/Dosada05/prediction-game/services"
	"github.com/Dosada05/prediction-game/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

const (
	sessionPruneInterval = 30 * time.Minute // How often idle sessions are swept
	sessionMaxIdle       = 24 * time.Hour
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Каталог команд и жеребьёвки
	cat, err := catalog.Load()
	if err != nil {
		logger.Error("failed to load team catalog", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("team catalog loaded")

	// Хранилище флагов (Cloudflare R2), опциональное
	var flagStore storage.FileUploader
	if cfg.FlagStoreEnabled() {
		flagStore, err = storage.NewR2FlagStore(storage.FlagStoreConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize flag asset store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("flag asset store initialized")
	} else {
		logger.Info("flag asset store disabled")
	}

	// WebSocket Hub
	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("live hub started")

	// Репозитории
	submissionRepo := repositories.NewPostgresSubmissionRepository(dbConn)

	// Сервисы
	sessionStore := services.NewSessionStore()
	predictionService := services.NewPredictionService(sessionStore, cat, hub, logger)
	catalogService := services.NewCatalogService(cat, flagStore, logger)
	dashboardService := services.NewDashboardService(submissionRepo)

	var emailService *services.EmailService
	if cfg.EmailEnabled() {
		emailService = services.NewEmailService(cfg)
		logger.Info("confirmation email enabled", slog.String("smtp_host", cfg.SMTPHost))
	} else {
		logger.Info("confirmation email disabled")
	}
	submissionService := services.NewSubmissionService(sessionStore, submissionRepo, emailService, hub, logger)
	logger.Info("services initialized")

	// Уборка брошенных сессий
	go func() {
		ticker := time.NewTicker(sessionPruneInterval)
		defer ticker.Stop()
		logger.Info("session pruner started", slog.Duration("interval", sessionPruneInterval))
		for range ticker.C {
			predictionService.PruneIdleSessions(sessionMaxIdle)
		}
	}()

	// Обработчики HTTP
	predictionHandler := handlers.NewPredictionHandler(predictionService, cfg.SessionSecret)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.AdminAPIKey)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	webSocketHandler := handlers.NewWebSocketHandler(hub, cfg.SessionSecret, logger)
	logger.Info("HTTP handlers initialized")

	// Маршрутизатор
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		predictionHandler,
		submissionHandler,
		catalogHandler,
		dashboardHandler,
		webSocketHandler,
		cfg.SessionSecret,
		cfg.CORSOrigin,
	)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
