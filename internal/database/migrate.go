package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"career-compass/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations brings the schema up to date for the given driver.
// SQLite is versioned through golang-migrate; Oracle runs the ordered
// .up.sql scripts and tolerates objects that already exist.
func RunMigrations(db *sql.DB, driver string) error {
	switch driver {
	case DriverSQLite:
		return migrateSQLite(db)
	case DriverOracle:
		return runSequential(db, "migrations/oracle")
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}

func migrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations/sqlite3")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}
	target, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, DriverSQLite, target)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Get().Info("Migrations completed successfully",
		zap.String("driver", DriverSQLite),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

// Oracle errors meaning the object is already in place.
var oracleAlreadyExists = []string{"ORA-00955", "ORA-01408"}

func runSequential(db *sql.DB, dir string) error {
	files, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		if strings.HasSuffix(f.Name(), ".up.sql") {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(migrationsFS, dir+"/"+name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		if _, err := db.Exec(strings.TrimSpace(string(content))); err != nil {
			if isAlreadyExists(err) {
				logger.Get().Debug("Migration already applied", zap.String("file", name))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}
	return nil
}

func isAlreadyExists(err error) bool {
	msg := err.Error()
	for _, code := range oracleAlreadyExists {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}
