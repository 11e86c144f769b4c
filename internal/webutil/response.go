// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"leetcode_journey/internal/model"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	var errResp model.APIErrorResponse
	switch {
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{
			Status:  StatusError,
			Message: appErr.Message,
			Code:    appErr.Code,
			Field:   appErr.Field,
		}
	case statusCode == http.StatusBadRequest:
		errResp = model.APIErrorResponse{Status: StatusError, Message: err.Error(), Code: "INVALID_REQUEST"}
	default:
		// 予期せぬエラー。詳細はログにだけ出す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{
			Status:  StatusError,
			Message: "An internal error occurred.",
			Code:    "INTERNAL_SERVER_ERROR",
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"An internal error occurred.","code":"INTERNAL_SERVER_ERROR"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		logger.Warn("Failed to write response", slog.Any("error", err))
	}
}
