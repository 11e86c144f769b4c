// internal/client/client.go
package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/endpoint"
	"leetcode_journey/internal/model"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// ConfigSource は送信先の設定を返すもの (通常は *endpoint.Resolver)
type ConfigSource interface {
	Config() (model.EndpointConfig, error)
}

// Client は問題の記録を送信先の /log に POST します。
// 失敗しても再送はしない。
type Client struct {
	source ConfigSource
	http   *resty.Client
	logger *slog.Logger
}

func New(source ConfigSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := resty.New()
	httpClient.SetHeader("User-Agent", config.AppName+"/"+config.AppVersion)
	httpClient.SetTimeout(defaultTimeout)
	return &Client{source: source, http: httpClient, logger: logger}
}

// Submit は記録を送信し、サーバーの応答を返します。
// 接続できなければ ErrNetworkUnavailable、5xx は ErrServerError、
// それ以外の失敗は ErrInvalidInput をサーバーの message 付きで返す。
func (c *Client) Submit(ctx context.Context, req *model.LogRequest) (*model.LogResponse, error) {
	cfg, err := c.source.Config()
	if err != nil {
		return nil, fmt.Errorf("load endpoint config: %w", err)
	}
	target := endpoint.LogURL(cfg.BaseURL)
	logger := c.logger.With(slog.String("url", target), slog.String("problem_number", req.ProblemNumber))

	var result model.LogResponse
	var apiErr model.APIErrorResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&apiErr).
		Post(target)
	if err != nil && (res == nil || res.RawResponse == nil) {
		logger.Warn("Submission failed", slog.Any("error", err))
		where := "local server not running"
		if cfg.UseRemote {
			where = "remote endpoint unreachable"
		}
		return nil, fmt.Errorf("%w: %s (%s): %v", model.ErrNetworkUnavailable, where, cfg.BaseURL, err)
	}
	if err != nil && res.IsSuccess() {
		// 応答は返ったが本文が読めない
		return nil, fmt.Errorf("%w: unreadable response: %v", model.ErrServerError, err)
	}

	if !res.IsSuccess() {
		msg := apiErr.Message
		if msg == "" {
			msg = res.Status()
		}
		logger.Warn("Submission rejected", slog.Int("status", res.StatusCode()), slog.String("message", msg))
		if res.StatusCode() >= 500 {
			return nil, fmt.Errorf("%w: %s", model.ErrServerError, msg)
		}
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, msg)
	}

	logger.Info("Problem submitted", slog.String("message", result.Message))
	return &result, nil
}
