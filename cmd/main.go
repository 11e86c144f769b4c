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
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/handlers"
	"leetcode_journey/internal/repository"
	"leetcode_journey/internal/service"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level, tempLogger)
	log.Println("Log Config Loaded...")
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(cfg.Database, logger)
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

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	problemRepo := repository.NewGormProblemRepository()
	problemService := service.NewProblemService(db, problemRepo, cfg)

	// 4. Setup Router
	r := handlers.NewRouter(cfg, db, problemService, logger)

	// 5. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1) // Listen失敗は致命的
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定のログレベルと APP_ENV に応じて slog ロガーを作る。dev では tint
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
