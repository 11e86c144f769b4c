package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLogLines は JSON ハンドラの出力を1行ずつ map にします
func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var loggerInHandler *slog.Logger
	var bodyInHandler string
	handler := chimiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loggerInHandler = GetLogger(r.Context())
		b, _ := io.ReadAll(r.Body)
		bodyInHandler = string(b)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/log", strings.NewReader(`{"problem_number":"1"}`))
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"problem_number":"1"}`, bodyInHandler, "ボディは後続ハンドラでも読めること")
	require.NotNil(t, loggerInHandler)
	assert.NotSame(t, slog.Default(), loggerInHandler)

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "Request started", lines[0]["msg"])
	assert.NotEmpty(t, lines[0]["req_id"])

	assert.Equal(t, "Request completed", lines[1]["msg"])
	assert.Equal(t, "WARN", lines[1]["level"])
	assert.EqualValues(t, http.StatusBadRequest, lines[1]["status"])
	assert.EqualValues(t, len(`{"status":"error"}`), lines[1]["bytes_out"])

	assert.Equal(t, "Exchange detail", lines[2]["msg"])
	headers := lines[2]["request_headers"].(map[string]any)
	assert.Equal(t, "[MASKED]", headers["Authorization"])
	assert.Equal(t, `{"problem_number":"1"}`, lines[2]["request_body"])
	assert.Equal(t, `{"status":"error"}`, lines[2]["response_body"])
}

func TestLoggingMiddleware_BodyCapture(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	large := strings.Repeat("x", maxLoggedBody+100)
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(large))
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, large, rr.Body.String(), "クライアントには全体が届くこと")
	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 3)
	assert.EqualValues(t, http.StatusOK, lines[1]["status"])
	assert.Len(t, lines[2]["response_body"], maxLoggedBody)
}

func TestLoggingMiddleware_InfoLevelSkipsDetail(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "ERROR", lines[1]["level"])
}

func TestGetLogger_Default(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))
	_, ok := LoggerFrom(context.Background())
	assert.False(t, ok)

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, l, GetLogger(WithLogger(context.Background(), l)))
}
