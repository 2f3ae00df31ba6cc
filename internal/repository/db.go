package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"scribe_tree_writer/internal/config"
	"scribe_tree_writer/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は PostgreSQL に接続し、slog 経由でクエリログを出す *gorm.DB を返します。
func NewDB(cfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	// APP_ENV=dev のときだけ全クエリを出す
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	// slog-gorm ロガーを作成 (slogGorm.Interface を返す)
	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(cfg.SlowThreshold),
	)

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close() // Ping失敗時はここでClose
		return nil, err
	}

	// コネクションプール
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	appLogger.Info("Database connection established with GORM")

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			appLogger.Error("Error migrating database", slog.Any("error", err))
			sqlDB.Close()
			return nil, err
		}
		appLogger.Info("Database schema migrated")
	}

	return db, nil
}

// Migrate はアプリケーションのテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Document{},
		&model.DocumentVersion{},
		&model.Reflection{},
		&model.Interaction{},
	); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}
