package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"courseapi/internal/config"
	"courseapi/internal/model"
)

// Open connects to the store selected by cfg. SQL warnings and slow queries go
// to w; a nil w silences them.
func Open(cfg config.Database, w logger.Writer) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return NewMySQL(cfg.DSN, w)
	case config.DriverSQLite:
		return NewSQLite(cfg.DSN, w)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate brings the schema in line with the models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Course{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops every table owned by the service, children first.
func Reset(db *gorm.DB) error {
	for _, table := range []interface{}{&model.Course{}, &model.User{}} {
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}

func gormConfig(w logger.Writer) *gorm.Config {
	gormLogger := logger.Discard
	if w != nil {
		gormLogger = logger.New(w, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	}
}
