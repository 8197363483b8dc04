package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventboard-backend/internal/config"
)

// ConnectDB opens the configured database and migrates all models.
func ConnectDB(conf *config.Config) (*gorm.DB, error) {
	switch conf.DbDriver {
	case config.DriverSQLite:
		if dir := filepath.Dir(conf.DbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return Open(sqlite.Open(conf.DbPath + "?_foreign_keys=on"))
	default:
		return Open(postgres.Open(conf.PostgresDSN()))
	}
}

// Open connects through dialector and runs AutoMigrate.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if gdb.Dialector.Name() == "sqlite" {
		// a single connection serialises writers and keeps in-memory databases shared
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	zap.L().Info("database connected and migrated", zap.String("dialect", gdb.Dialector.Name()))
	return gdb, nil
}

// Migrate creates or updates every table.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&User{}, &Event{}, &EventMember{}, &Task{}, &Message{})
}

// Ping checks the underlying connection.
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
