// internal/handlers/log_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/middleware"
	"leetcode_journey/internal/model"
	"leetcode_journey/internal/service"
	"leetcode_journey/internal/webutil"
)

type LogHandler struct {
	service service.ProblemService
	logger  *slog.Logger
}

func NewLogHandler(s service.ProblemService, logger *slog.Logger) *LogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHandler{
		service: s,
		logger:  logger,
	}
}

// requestLogger はミドルウェアが格納したリクエスト単位のロガー (なければ fallback) に handler 名を付ける
func requestLogger(r *http.Request, fallback *slog.Logger, name string) *slog.Logger {
	logger, ok := middleware.LoggerFrom(r.Context())
	if !ok {
		logger = fallback
	}
	return logger.With(slog.String("handler", name))
}

// Root はサービスの生存確認。クライアントの接続確認 (probe) はここを叩く
func (h *LogHandler) Root(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "Root")
	webutil.RespondWithJSON(w, http.StatusOK, model.HealthResponse{Status: "ok", Service: config.AppName}, logger)
}

// PostLog は解いた問題を記録し、次回の復習日を返す
func (h *LogHandler) PostLog(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostLog")

	var req model.LogRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()), slog.String("problem_number", req.ProblemNumber))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.LogProblem(r.Context(), &req)
	if err != nil {
		logger.Error("Error logging problem in service", slog.Any("error", err), slog.String("problem_number", req.ProblemNumber))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Problem logged", slog.String("problem_number", req.ProblemNumber), slog.Int("review_count", resp.ReviewCount))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
