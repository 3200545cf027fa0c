package testhelpers

import (
	"fmt"
	"testing"

	"gametracker/backend/internal/store/gormstore"
)

// SetupTestStore creates an isolated in-memory SQLite store for tests.
func SetupTestStore(t *testing.T) *gormstore.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	st, err := gormstore.OpenSQLite(dsn)
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// DropUsersTable removes the users table to force storage errors.
func DropUsersTable(t *testing.T, st *gormstore.Store) {
	t.Helper()
	if err := st.DB.Migrator().DropTable("users"); err != nil {
		panic(fmt.Sprintf("failed to drop users table: %v", err))
	}
}
