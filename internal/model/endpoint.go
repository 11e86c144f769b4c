// internal/model/endpoint.go
package model

// LocalDefaultURL はローカル開発サーバーのベースURL
const LocalDefaultURL = "http://127.0.0.1:5001"

// キーバリューストアに保存するキー
const (
	KeyAPIURL    = "api_url"
	KeyUseRemote = "use_remote"
)

// EndpointConfig は送信先の設定です
// BaseURL は末尾スラッシュなしの http(s) URL。UseRemote が true のとき BaseURL はローカル既定値ではない。
type EndpointConfig struct {
	BaseURL   string `json:"api_url" mapstructure:"api_url"`
	UseRemote bool   `json:"use_remote" mapstructure:"use_remote"`
}

// DefaultEndpointConfig は未設定時の値
func DefaultEndpointConfig() EndpointConfig {
	return EndpointConfig{BaseURL: LocalDefaultURL, UseRemote: false}
}

// EndpointState はリゾルバの状態
type EndpointState int

const (
	StateUnconfigured EndpointState = iota
	StateLocal
	StateRemote
)

func (s EndpointState) String() string {
	switch s {
	case StateLocal:
		return "local"
	case StateRemote:
		return "remote"
	default:
		return "unconfigured"
	}
}

// DetectResult は自動検出の結果
type DetectResult string

const (
	DetectLocal  DetectResult = "local"
	DetectRemote DetectResult = "remote"
	DetectNone   DetectResult = "none"
)
