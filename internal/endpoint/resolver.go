// internal/endpoint/resolver.go
package endpoint

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"leetcode_journey/internal/model"

	"golang.org/x/sync/errgroup"
)

// DefaultProbeTimeout は AutoDetect が1回のプローブに使う上限
const DefaultProbeTimeout = 2 * time.Second

// subscriberBuffer を超えた通知は捨てる
const subscriberBuffer = 4

// Resolver は送信先の設定を所有し、保存・解決・自動検出を行います。
// 読み取りは毎回ストアの最新値を見る。書き込みは mu で直列化する。
type Resolver struct {
	store        Store
	prober       Prober
	probeTimeout time.Duration
	logger       *slog.Logger

	mu sync.Mutex

	subsMu sync.Mutex
	subs   map[int]chan model.EndpointConfig
	nextID int
}

type Option func(*Resolver)

func WithProbeTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.probeTimeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewResolver(store Store, prober Prober, opts ...Option) *Resolver {
	r := &Resolver{
		store:        store,
		prober:       prober,
		probeTimeout: DefaultProbeTimeout,
		logger:       slog.Default(),
		subs:         make(map[int]chan model.EndpointConfig),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config は保存済みの設定を返す。未保存なら既定値 (ローカル)
func (r *Resolver) Config() (model.EndpointConfig, error) {
	cfg, _, err := r.store.Load()
	if err != nil {
		return model.EndpointConfig{}, err
	}
	return cfg, nil
}

func (r *Resolver) State() (model.EndpointState, error) {
	cfg, ok, err := r.store.Load()
	if err != nil {
		return model.StateUnconfigured, err
	}
	return stateOf(cfg, ok), nil
}

func stateOf(cfg model.EndpointConfig, ok bool) model.EndpointState {
	switch {
	case !ok:
		return model.StateUnconfigured
	case cfg.UseRemote:
		return model.StateRemote
	default:
		return model.StateLocal
	}
}

// Resolve は送信先 URL (<baseURL>/log) を返す
func (r *Resolver) Resolve() (string, error) {
	cfg, err := r.Config()
	if err != nil {
		return "", err
	}
	return LogURL(cfg.BaseURL), nil
}

// SetConfig は URL を検証・正規化して保存し、購読者に通知します。
// ローカル既定値をリモートとして保存することはできない。
func (r *Resolver) SetConfig(rawURL string, useRemote bool) (model.EndpointConfig, error) {
	baseURL, err := NormalizeBaseURL(rawURL)
	if err != nil {
		return model.EndpointConfig{}, err
	}
	if useRemote && baseURL == model.LocalDefaultURL {
		return model.EndpointConfig{}, fmt.Errorf("%w: the local default cannot be used as a remote endpoint", model.ErrInvalidURL)
	}

	cfg := model.EndpointConfig{BaseURL: baseURL, UseRemote: useRemote}
	r.mu.Lock()
	err = r.store.Save(cfg)
	r.mu.Unlock()
	if err != nil {
		return model.EndpointConfig{}, err
	}

	r.logger.Info("Endpoint config saved", slog.String("api_url", cfg.BaseURL), slog.Bool("use_remote", cfg.UseRemote))
	r.notify(cfg)
	return cfg, nil
}

// Probe は timeout 以内に baseURL へ到達できるかを返す
func (r *Resolver) Probe(ctx context.Context, baseURL string, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return r.prober.Probe(ctx, baseURL)
}

// AutoDetect は保存済みのリモート、ローカル既定値の順に到達可能な送信先を選びます。
// リモートとローカルのプローブは並行に走るが、結果の選び方は常に
// リモート優先で、完了順には依存しない。
// ローカル既定値を保存するのは未設定状態からのときだけで、保存済みの設定は上書きしない。
// どちらにも届かなければ "none" を返し、設定は変更しない。
func (r *Resolver) AutoDetect(ctx context.Context) (model.DetectResult, error) {
	cfg, ok, err := r.store.Load()
	if err != nil {
		return model.DetectNone, err
	}

	tryRemote := ok && cfg.UseRemote && cfg.BaseURL != model.LocalDefaultURL

	var remoteOK, localOK bool
	var g errgroup.Group
	if tryRemote {
		g.Go(func() error {
			remoteOK = r.Probe(ctx, cfg.BaseURL, r.probeTimeout)
			return nil
		})
	}
	g.Go(func() error {
		localOK = r.Probe(ctx, model.LocalDefaultURL, r.probeTimeout)
		return nil
	})
	_ = g.Wait()

	logger := r.logger.With(slog.Bool("remote_ok", remoteOK), slog.Bool("local_ok", localOK))
	switch {
	case remoteOK:
		logger.Info("Remote endpoint reachable", slog.String("api_url", cfg.BaseURL))
		return model.DetectRemote, nil
	case localOK:
		if !ok {
			saved, err := r.adoptLocalDefault()
			if err != nil {
				return model.DetectNone, err
			}
			if saved {
				logger.Info("Local endpoint detected and saved", slog.String("api_url", model.LocalDefaultURL))
				r.notify(model.DefaultEndpointConfig())
			}
		} else if cfg.BaseURL != model.LocalDefaultURL {
			logger.Warn("Local default reachable, saved endpoint kept",
				slog.String("api_url", cfg.BaseURL), slog.String("local_url", model.LocalDefaultURL))
		}
		return model.DetectLocal, nil
	default:
		logger.Warn("No endpoint reachable")
		return model.DetectNone, nil
	}
}

// adoptLocalDefault はプローブ中に別の書き込みがなかった場合だけローカル既定値を保存する
func (r *Resolver) adoptLocalDefault() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok, err := r.store.Load()
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	if err := r.store.Save(model.DefaultEndpointConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// Subscribe は設定変更の通知チャネルと購読解除の関数を返します。
// 受信が追いつかない購読者への通知は捨てられる。
func (r *Resolver) Subscribe() (<-chan model.EndpointConfig, func()) {
	ch := make(chan model.EndpointConfig, subscriberBuffer)

	r.subsMu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = ch
	r.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.subsMu.Lock()
			delete(r.subs, id)
			r.subsMu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (r *Resolver) notify(cfg model.EndpointConfig) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for id, ch := range r.subs {
		select {
		case ch <- cfg:
		default:
			r.logger.Debug("Dropping endpoint change event for slow subscriber", slog.Int("subscriber", id))
		}
	}
}
