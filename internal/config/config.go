// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "postgres" または "sqlite"
	URL    string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	ReviewLimit int `mapstructure:"review_limit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// LoadConfig は path (と カレントディレクトリ) の config.yaml と環境変数から設定を読み込みます。
// 設定ファイルがなくても既定値と環境変数で起動できる。
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	// 例: APP_SERVER_PORT, APP_DATABASE_URL
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Cloud Run / Functions 互換の環境変数
	_ = v.BindEnv("server.port", "APP_SERVER_PORT", "PORT")
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")

	// AutomaticEnv は Unmarshal 時に既知のキーしか見ないため既定値を登録しておく
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", "")
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("app.review_limit", DefaultAppReviewLimit)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("cors.allowed_methods", DefaultAllowedMethods)
	v.SetDefault("cors.allowed_headers", DefaultAllowedHeaders)
	v.SetDefault("cors.max_age", DefaultCORSMaxAge)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	// --- デフォルト値の補正 ---
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	// PORT=8080 のように番号だけ渡された場合
	if !strings.Contains(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	if cfg.App.ReviewLimit <= 0 {
		log.Printf("App review limit not set or invalid, using default '%d'", DefaultAppReviewLimit)
		cfg.App.ReviewLimit = DefaultAppReviewLimit
	}
	cfg.Database.Driver = strings.ToLower(cfg.Database.Driver)
	if cfg.Database.Driver == DriverSQLite && cfg.Database.URL == "" {
		log.Printf("Database URL not set, using local sqlite file '%s'", DefaultSQLitePath)
		cfg.Database.URL = DefaultSQLitePath
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Database Driver: %s", cfg.Database.Driver)
	log.Printf("Review Limit: %d", cfg.App.ReviewLimit)

	return &cfg, nil
}
