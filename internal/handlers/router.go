// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/middleware"
	"leetcode_journey/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// NewRouter はミドルウェアとルーティングを設定した chi ルーターを返します
func NewRouter(cfg *config.Config, db *gorm.DB, problemService service.ProblemService, logger *slog.Logger) http.Handler {
	logHandler := NewLogHandler(problemService, logger)
	problemHandler := NewProblemHandler(problemService, logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// 拡張機能 (chrome-extension://) からの POST /log を許可する
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/", logHandler.Root)
	r.Post("/log", logHandler.PostLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/problems", problemHandler.GetProblems)
		r.Get("/reviews", problemHandler.GetReviews)
		r.Route("/stats", func(r chi.Router) {
			r.Get("/topics", problemHandler.GetTopicStats)
			r.Get("/summary", problemHandler.GetSummary)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
