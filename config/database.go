package config

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Pool ceiling. Requests beyond it queue on the database/sql pool
// rather than failing fast.
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = time.Hour
)

// Connect opens the database and bounds the connection pool. The
// returned handle is the single shared gateway; callers receive it by
// injection, never through a package global.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}
