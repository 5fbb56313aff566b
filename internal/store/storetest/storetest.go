// Package storetest provides document stores for tests.
package storetest

import (
	"testing"

	"github.com/kishoreadhith-v/clubs-api/internal/store"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns a GormStore on a private in-memory SQLite database, closed when the test ends.
func NewSQLite(t testing.TB) *store.GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	st := store.NewGormStore(db)
	require.NoError(t, st.Migrate())

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return st
}
