package database

import (
	"fmt"

	"career-compass/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	_ "github.com/sijms/go-ora/v2"  // Oracle driver
	"go.uber.org/zap"
)

const (
	DriverSQLite = "sqlite3"
	DriverOracle = "oracle"
)

func init() {
	// go-ora uses :name placeholders.
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
}

// NewSQLXDB opens and pings a database for the given driver.
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverSQLite, DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		// A single writer avoids SQLITE_BUSY under concurrent inserts.
		db.SetMaxOpenConns(1)
	}

	logger.Get().Info("Connected to database", zap.String("driver", driver))
	return db, nil
}
