// Package dbtest opens throwaway sqlite databases carrying the real schema.
package dbtest

import (
	"context"
	"testing"

	"github.com/angelmondragon/pantry-backend/pkg/config"
	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/migrate"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DSN returns a unique shared-cache in-memory sqlite DSN with foreign keys on.
func DSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
}

// New opens a fresh database, applies every migration and closes it when the test ends.
func New(t testing.TB) *db.Client {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(DSN()), db.GormConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// the in-memory database lives as long as one connection stays open
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetConnMaxLifetime(0)

	if err := migrate.Sync(context.Background(), sqlDB, config.DriverSQLite, nil); err != nil {
		t.Fatalf("sync schema: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db.NewFromGorm(conn, config.DriverSQLite)
}
