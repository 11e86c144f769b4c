// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "leetcode-journey"
	AppVersion = "1.2.0"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":5001"
	DefaultLogLevel       = "info"
	DefaultAppReviewLimit = 20
	DefaultDatabaseDriver = DriverSQLite
	DefaultSQLitePath     = "leetcode_journey.db"
	DefaultCORSMaxAge     = 3600
)

// 拡張機能・ローカル開発・Cloud Functions からのアクセスを許可する
var (
	DefaultAllowedOrigins = []string{"chrome-extension://*", "http://127.0.0.1:*", "https://*.cloudfunctions.net"}
	DefaultAllowedMethods = []string{"GET", "POST", "OPTIONS"}
	DefaultAllowedHeaders = []string{"Content-Type"}
)
