package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/angelmondragon/pantry-backend/pkg/config"
	"github.com/angelmondragon/pantry-backend/pkg/logger"
	"github.com/pressly/goose/v3"
)

// DefaultDir is where new migrations are written on disk; one subdirectory per driver.
const DefaultDir = "pkg/migrate/migrations"

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedded embed.FS

// goose keeps dialect, base FS and logger in package globals.
var gooseMu sync.Mutex

// Migrations exposes the embedded migration tree (migrations/<driver>/*.sql).
func Migrations() fs.FS {
	return embedded
}

// Dir returns the embedded directory holding migrations for driver.
func Dir(driver string) (string, error) {
	switch normalize(driver) {
	case config.DriverPostgres:
		return path.Join("migrations", config.DriverPostgres), nil
	case config.DriverSQLite:
		return path.Join("migrations", config.DriverSQLite), nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}

func gooseDialect(driver string) (string, error) {
	switch normalize(driver) {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}

func normalize(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

// withGoose configures goose for driver and runs fn with the embedded directory.
func withGoose(driver string, logg *logger.Logger, fn func(dir string) error) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	dir, err := Dir(driver)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedded)
	defer goose.SetBaseFS(nil)

	if logg != nil {
		goose.SetLogger(logg)
	} else {
		goose.SetLogger(goose.NopLogger())
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return fn(dir)
}

// Sync brings the schema up to the latest embedded migration. It is the
// startup schema step; failures must stop the process.
func Sync(ctx context.Context, db *sql.DB, driver string, logg *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}

	if logg != nil {
		ctx = logg.WithField(ctx, "driver", normalize(driver))
		logg.Info(ctx, "syncing schema")
	}

	err := withGoose(driver, logg, func(dir string) error {
		if err := goose.UpContext(ctx, db, dir); err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if logg != nil {
		logg.Info(ctx, "schema in sync")
	}
	return nil
}

// Run executes a standard goose command (up, down, status, redo, reset, version).
func Run(ctx context.Context, db *sql.DB, driver string, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if command == "" {
		return fmt.Errorf("command is required")
	}

	return withGoose(driver, nil, func(dir string) error {
		// RunContext prints status output to stdout (goose internal)
		if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
			return fmt.Errorf("goose %s: %w", command, err)
		}
		return nil
	})
}

// Version returns the current schema version recorded by goose.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	var version int64
	err := withGoose(driver, nil, func(string) error {
		v, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("get db version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, driver string, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	return withGoose(driver, nil, func(dir string) error {
		current, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("get db version: %w", err)
		}

		switch {
		case current == target:
			return nil

		case current < target:
			if err := goose.UpToContext(ctx, db, dir, target); err != nil {
				return fmt.Errorf("goose up-to %d: %w", target, err)
			}
			return nil

		default:
			if err := goose.DownToContext(ctx, db, dir, target); err != nil {
				return fmt.Errorf("goose down-to %d: %w", target, err)
			}
			return nil
		}
	})
}
