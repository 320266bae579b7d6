package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/pantry-backend/pkg/config"
	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/logger"
	"github.com/angelmondragon/pantry-backend/pkg/migrate"
)

var migrationsDir string

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the pantry database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", migrate.DefaultDir, "migrations source tree (one subdirectory per driver)")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(validateCmd)
}

// migrate up
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, sqlDB *sql.DB, cfg *config.Config, logg *logger.Logger) error {
			return migrate.Sync(ctx, sqlDB, cfg.DB.Driver, logg)
		})
	},
}

// migrate down
var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, sqlDB *sql.DB, cfg *config.Config, _ *logger.Logger) error {
			return migrate.Run(ctx, sqlDB, cfg.DB.Driver, "down")
		})
	},
}

// migrate status
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations are applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, sqlDB *sql.DB, cfg *config.Config, _ *logger.Logger) error {
			if err := migrate.Run(ctx, sqlDB, cfg.DB.Driver, "status"); err != nil {
				return err
			}
			current, err := migrate.Version(ctx, sqlDB, cfg.DB.Driver)
			if err != nil {
				return err
			}
			fmt.Println("current version:", current)
			return nil
		})
	},
}

// migrate version 20260301090000
var versionCmd = &cobra.Command{
	Use:   "version <YYYYMMDDHHMMSS>",
	Short: "Migrate up or down to the given version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, sqlDB *sql.DB, cfg *config.Config, _ *logger.Logger) error {
			return migrate.MigrateToVersion(ctx, sqlDB, cfg.DB.Driver, args[0])
		})
	},
}

// migrate create add_column
var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Scaffold a migration for every supported driver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := migrate.CreateSQLMigration(migrationsDir, args[0], time.Now())
		if err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		for _, p := range paths {
			fmt.Println("created migration:", p)
		}
		return nil
	},
}

// migrate validate
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check migration filenames and goose annotations",
	RunE: func(cmd *cobra.Command, args []string) error {
		var reference []string
		for _, driver := range []string{config.DriverPostgres, config.DriverSQLite} {
			dir := filepath.Join(migrationsDir, driver)
			if err := migrate.ValidateDir(dir); err != nil {
				return fmt.Errorf("%s: %w", dir, err)
			}
			versions, err := migrate.Versions(os.DirFS(dir), ".")
			if err != nil {
				return err
			}
			if reference == nil {
				reference = versions
				continue
			}
			if !slices.Equal(reference, versions) {
				return fmt.Errorf("%s: versions differ from %s", dir, config.DriverPostgres)
			}
		}
		fmt.Println("migration validation passed")
		return nil
	},
}

type dbCommand func(ctx context.Context, sqlDB *sql.DB, cfg *config.Config, logg *logger.Logger) error

// withDatabase loads config, opens the configured database and runs fn.
func withDatabase(ctx context.Context, fn dbCommand) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logg := logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})
	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"driver": cfg.DB.Driver,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "resource not working: database", err)
		return err
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	sqlDB, err := dbClient.SQL()
	if err != nil {
		return err
	}

	logg.Info(ctx, "migrate ready")
	return fn(ctx, sqlDB, cfg, logg)
}
