package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true, // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true, // Don't include params in the SQL log
			Colorful:                  false,
		},
	)
}

func configureConnectionPool(db *gorm.DB, maxOpen int, maxLifetime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(min(10, maxOpen))
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return nil
}

// NewGormDBFromDSN opens the database named by dsn. A "sqlite:" prefix (or
// ":memory:") selects SQLite, anything else is handed to the Postgres driver.
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "sqlite:") {
		return NewSQLiteDB(strings.TrimPrefix(dsn, "sqlite:"), logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: getLogger(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := configureConnectionPool(db, 100, time.Hour); err != nil {
		return nil, err
	}

	return db, nil
}

// NewSQLiteDB opens a SQLite database. An in-memory database lives on a
// single connection that is never recycled.
func NewSQLiteDB(path string, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: getLogger(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	maxOpen, lifetime := 10, time.Hour
	if path == ":memory:" {
		maxOpen, lifetime = 1, 0
	}
	if err := configureConnectionPool(db, maxOpen, lifetime); err != nil {
		return nil, err
	}

	return db, nil
}
