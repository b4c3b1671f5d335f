package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	migrateV4 "github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Лимиты пула *sql.DB под gorm
const (
	poolMaxOpen     = 25
	poolMaxIdle     = 10
	poolConnMaxLife = time.Hour
)

// NewPostgresDB открывает gorm поверх PostgreSQL и настраивает пул.
// debug включает SQL-лог на уровне Info.
func NewPostgresDB(dsn string, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(debug)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(poolMaxOpen)
	sqlDB.SetMaxIdleConns(poolMaxIdle)
	sqlDB.SetConnMaxLifetime(poolConnMaxLife)

	return db, nil
}

func gormLogLevel(debug bool) logger.LogLevel {
	if debug {
		return logger.Info
	}
	return logger.Warn
}

// MigrateDB прогоняет схему до последней версии из source, например "file://migrations"
func MigrateDB(db *gorm.DB, source string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("migrate: sql.DB unavailable: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("migrate: database unreachable: %w", err)
	}

	driver, err := migratePostgres.WithInstance(sqlDB, &migratePostgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate: postgres driver: %w", err)
	}
	m, err := migrateV4.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate: open %s: %w", source, err)
	}

	log.Printf("[Database] Миграции: источник %s", source)
	return migrateUp(m)
}

type upMigrator interface {
	Up() error
}

// migrateUp считает ErrNoChange успехом
func migrateUp(m upMigrator) error {
	err := m.Up()
	switch {
	case errors.Is(err, migrateV4.ErrNoChange):
		log.Println("[Database] Схема уже на последней версии")
		return nil
	case err != nil:
		log.Printf("[Database] Миграции не применились: %v", err)
		return fmt.Errorf("migrate up: %w", err)
	}
	log.Println("[Database] Схема обновлена")
	return nil
}
