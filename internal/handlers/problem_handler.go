// internal/handlers/problem_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"leetcode_journey/internal/model"
	"leetcode_journey/internal/service"
	"leetcode_journey/internal/webutil"
)

// ProblemHandler は記録済みの問題の参照・集計API
type ProblemHandler struct {
	service service.ProblemService
	logger  *slog.Logger
}

func NewProblemHandler(s service.ProblemService, logger *slog.Logger) *ProblemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProblemHandler{service: s, logger: logger}
}

func (h *ProblemHandler) GetProblems(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetProblems")

	problems, err := h.service.ListProblems(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if problems == nil {
		problems = []*model.Problem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, problems, logger)
}

// GetReviews は ?date=YYYY-MM-DD (省略時は今日) までに復習日が来ている問題を返す
func (h *ProblemHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetReviews")

	problems, err := h.service.DueReviews(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if problems == nil {
		problems = []*model.Problem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, problems, logger)
}

func (h *ProblemHandler) GetTopicStats(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetTopicStats")

	stats, err := h.service.TopicStats(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

func (h *ProblemHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetSummary")

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}
