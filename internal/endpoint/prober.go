// internal/endpoint/prober.go
package endpoint

import (
	"context"
	"log/slog"
	"net/http"

	"leetcode_journey/internal/config"

	"github.com/go-resty/resty/v2"
)

// Prober はベースURLにサーバーがいるかを確認します。
// 打ち切りは ctx の期限で行う。
type Prober interface {
	Probe(ctx context.Context, baseURL string) bool
}

// HTTPProber は GET <base> を試し、だめなら OPTIONS <base>/log を試す。
// 5xx 未満のステータスが返れば到達可能とみなす。
type HTTPProber struct {
	client *resty.Client
	logger *slog.Logger
}

func NewHTTPProber(logger *slog.Logger) *HTTPProber {
	if logger == nil {
		logger = slog.Default()
	}
	client := resty.New()
	client.SetHeader("User-Agent", config.AppName+"/"+config.AppVersion)
	return &HTTPProber{client: client, logger: logger}
}

func (p *HTTPProber) Probe(ctx context.Context, baseURL string) bool {
	if p.reachable(ctx, http.MethodGet, baseURL) {
		return true
	}
	return p.reachable(ctx, http.MethodOptions, LogURL(baseURL))
}

func (p *HTTPProber) reachable(ctx context.Context, method, target string) bool {
	res, err := p.client.R().SetContext(ctx).Execute(method, target)
	if err != nil {
		p.logger.Debug("Probe failed", slog.String("method", method), slog.String("url", target), slog.Any("error", err))
		return false
	}
	p.logger.Debug("Probe response", slog.String("method", method), slog.String("url", target), slog.Int("status", res.StatusCode()))
	return res.StatusCode() < http.StatusInternalServerError
}
