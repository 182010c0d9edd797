package database

import (
	"fmt"
	"log/slog"
	"time"

	"moviehub/internal/microservices/http-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a pooled Postgres connection through pgx and wraps it
// with GORM. The caller owns the returned handle for the process
// lifetime.
func Connect(databaseURL string) (*gorm.DB, error) {
	pgxCfg, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	sqlDB := stdlib.OpenDB(*pgxCfg)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	slog.Info("connected to postgres", "host", pgxCfg.Host, "database", pgxCfg.Database)
	return db, nil
}

// Migrate creates or updates the schema for every model the API serves.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Genre{},
		&models.Person{},
		&models.Movie{},
		&models.MovieGenre{},
		&models.User{},
		&models.UserActivity{},
		&models.Review{},
		&models.WatchHistory{},
		&models.WatchHistoryEntry{},
		&models.Notification{},
		&models.Subscription{},
		&models.RefreshToken{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("database migrated")
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
