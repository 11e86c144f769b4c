// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type logCtxKey struct{}

// maxLoggedBody はデバッグログに出すボディの上限バイト数
const maxLoggedBody = 4 << 10

// maskedHeaders の値はログに出さない (小文字)
var maskedHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
}

// cappedBuffer は上限までだけ溜め、書き込み自体は常に成功させる
type cappedBuffer struct {
	bytes.Buffer
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if room := maxLoggedBody - b.Len(); room > 0 {
		if len(p) > room {
			b.Buffer.Write(p[:room])
		} else {
			b.Buffer.Write(p)
		}
	}
	return len(p), nil
}

// LoggingMiddleware はリクエストID付きのロガーをコンテキストに格納し、
// 開始と完了を1行ずつ記録します。Debug レベルではヘッダーとボディも出す。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), reqLogger))
			reqLogger.Info("Request started", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			var reqBody []byte
			var respBody cappedBuffer
			if debug {
				if r.Body != nil {
					reqBody, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
					r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(reqBody), r.Body))
				}
				ww.Tee(&respBody)
			}

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}
			reqLogger.Log(r.Context(), level, "Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"latency_ms", float64(time.Since(start).Microseconds())/1e3,
				"bytes_out", ww.BytesWritten(),
			)

			if debug {
				reqLogger.Debug("Exchange detail",
					"request_headers", maskHeaders(r.Header),
					"request_body", string(reqBody),
					"response_headers", maskHeaders(ww.Header()),
					"response_body", respBody.String(),
				)
			}
		})
	}
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// LoggerFrom はミドルウェアが格納したロガーを返す。なければ ok=false
func LoggerFrom(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger)
	return logger, ok
}

// GetLogger はコンテキストのロガー、なければ slog.Default() を返します
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := LoggerFrom(ctx); ok {
		return logger
	}
	return slog.Default()
}

func maskHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for key, values := range headers {
		if maskedHeaders[strings.ToLower(key)] {
			out[key] = "[MASKED]"
			continue
		}
		out[key] = strings.Join(values, ", ")
	}
	return out
}
