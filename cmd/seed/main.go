// cmd/seed/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"go_trivia_api/internal/config"
	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/repository"
)

// スキーマ作成と初期データ (カテゴリ・サンプル問題) の登録を行う。
// 何度実行しても既存データは変更しない。
func main() {
	fs := pflag.NewFlagSet("seed", pflag.ExitOnError)
	configDir := fs.String("config", "configs", "directory containing config.yaml")
	fs.String("database-url", "", "PostgreSQL connection URL")
	fs.Parse(os.Args[1:])

	if err := config.BindFlags(fs); err != nil {
		slog.Error("Error binding command line flags", slog.Any("error", err))
		os.Exit(1)
	}
	if err := config.LoadConfig(*configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := config.NewLogger(os.Stderr, config.Cfg.Log.Level).With(slog.String("command", "seed"))
	slog.SetDefault(logger)

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	ctx := middleware.WithLogger(context.Background(), logger)
	result, err := repository.Seed(ctx, db, repository.NewGormCategoryRepository(), repository.NewGormQuestionRepository())
	if err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		sqlDB.Close()
		os.Exit(1)
	}

	logger.Info("Seeding completed",
		slog.Int("categories_inserted", result.Categories),
		slog.Int("questions_inserted", result.Questions),
	)
}
