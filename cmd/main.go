// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"go_trivia_api/internal/config"
	"go_trivia_api/internal/handlers"
	"go_trivia_api/internal/repository"
	"go_trivia_api/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	fs := pflag.NewFlagSet(config.AppName, pflag.ExitOnError)
	configDir := fs.String("config", "configs", "directory containing config.yaml")
	fs.String("port", "", "listen address (e.g. :8080)")
	fs.String("database-url", "", "PostgreSQL connection URL")
	fs.Parse(os.Args[1:])

	if err := config.BindFlags(fs); err != nil {
		slog.Error("Error binding command line flags", slog.Any("error", err))
		os.Exit(1)
	}

	log.Println("Log Config Loading...")
	if err := config.LoadConfig(*configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logger := config.NewLogger(os.Stderr, config.Cfg.Log.Level)
	slog.SetDefault(logger)
	log.Println("Log Config Loaded...")

	slog.Info("Application starting...",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
	)

	// 1. DB接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if config.Cfg.Database.AutoMigrate {
		if err := repository.Migrate(context.Background(), db); err != nil {
			slog.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Database schema migrated")
	}

	// 2. Dependency Injection
	questionRepo := repository.NewGormQuestionRepository()
	categoryRepo := repository.NewGormCategoryRepository()

	categoryService := service.NewCategoryService(db, categoryRepo)
	questionService := service.NewQuestionService(db, questionRepo, categoryRepo)
	quizService := service.NewQuizService(db, questionRepo, categoryRepo, service.DefaultRandomizer())

	// 3. Setup Router
	router := handlers.NewRouter(logger, config.Cfg.CORS, handlers.Handlers{
		Category: handlers.NewCategoryHandler(categoryService, logger),
		Question: handlers.NewQuestionHandler(questionService, logger),
		Quiz:     handlers.NewQuizHandler(quizService, logger),
		Health:   handlers.NewHealthHandler(db),
	})

	// 4. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		slog.Info("Shutting down server...", slog.String("signal", sig.String()))
	case err := <-serverErr:
		slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
