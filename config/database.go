package config

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"business-service/models"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects to the configured database and migrates the schema
func OpenDB(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(sqliteDSN(cfg.DBPath)), gormCfg)
		if err == nil && isMemory(cfg.DBPath) {
			// every pooled connection would otherwise get its own empty database
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.SetMaxOpenConns(1)
			}
		}
	case "postgres":
		db, err = openPostgres(cfg.DatabaseURL, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the business, menu and cuisine_category tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Business{},
		&models.MenuItem{},
		&models.CuisineCategory{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

func openPostgres(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL environment variable not set")
	}
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️  Database ping failed: %v. Proceeding carefully...", err)
	}
	sqlDB.SetMaxOpenConns(10)
	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// sqliteDSN turns a file path into a DSN with foreign keys enforced, so that
// deleting a business cascades to its menu.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}
