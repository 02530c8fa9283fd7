package repositories

import (
	"fmt"
	"log"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rohits-web03/quickdrop/internal/config"
)

// ConnectDatabase opens the configured backend and makes sure the logs table
// exists.
func ConnectDatabase(cfg config.DBConfig, production bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = gormsqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	level := logger.Info
	if production {
		level = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Printf("Successfully connected to %s database", cfg.Driver)
	return db, nil
}

// Migrate creates the logs table if it is absent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&logRecord{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
