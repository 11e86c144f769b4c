// internal/endpoint/store.go
package endpoint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/model"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Store は EndpointConfig を保存するキーバリューストアです。
// Load は未保存なら ok=false を返す。
type Store interface {
	Load() (cfg model.EndpointConfig, ok bool, err error)
	Save(cfg model.EndpointConfig) error
}

// DefaultStorePath は $XDG_CONFIG_HOME/leetcode-journey/endpoint.yaml を返します (ディレクトリは作成される)
func DefaultStorePath() (string, error) {
	return xdg.ConfigFile(filepath.Join(config.AppName, "endpoint.yaml"))
}

// FileStore は YAML ファイルに api_url / use_remote を保存します
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (model.EndpointConfig, bool, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return model.DefaultEndpointConfig(), false, nil
		}
		return model.EndpointConfig{}, false, fmt.Errorf("read endpoint config %s: %w", s.path, err)
	}
	if !v.IsSet(model.KeyAPIURL) {
		return model.DefaultEndpointConfig(), false, nil
	}
	return model.EndpointConfig{
		BaseURL:   v.GetString(model.KeyAPIURL),
		UseRemote: v.GetBool(model.KeyUseRemote),
	}, true, nil
}

func (s *FileStore) Save(cfg model.EndpointConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	v := viper.New()
	v.Set(model.KeyAPIURL, cfg.BaseURL)
	v.Set(model.KeyUseRemote, cfg.UseRemote)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write endpoint config %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore はプロセス内だけで保持するストア
type MemoryStore struct {
	mu    sync.Mutex
	cfg   *model.EndpointConfig
	saves int
}

// NewMemoryStore は initial が nil なら未設定状態で始まる
func NewMemoryStore(initial *model.EndpointConfig) *MemoryStore {
	s := &MemoryStore{}
	if initial != nil {
		c := *initial
		s.cfg = &c
	}
	return s
}

func (s *MemoryStore) Load() (model.EndpointConfig, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		return model.DefaultEndpointConfig(), false, nil
	}
	return *s.cfg, true, nil
}

func (s *MemoryStore) Save(cfg model.EndpointConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = &cfg
	s.saves++
	return nil
}

// Saves は Save が呼ばれた回数
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
