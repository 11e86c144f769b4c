package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は設定に応じて postgres または sqlite に接続します
func NewDB(dbCfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	// APP_ENV=dev のときだけ全クエリを出す
	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	var dialector gorm.Dialector
	switch dbCfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dbCfg.URL)
	case config.DriverSQLite:
		dialector = sqlite.Open(dbCfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err), slog.String("driver", dbCfg.Driver))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if dbCfg.Driver == config.DriverSQLite {
		// sqlite は書き込みが直列なので接続は1本で十分
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", dbCfg.Driver))
	return db, nil
}

// Migrate はテーブルを作成・更新します
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Problem{})
}
