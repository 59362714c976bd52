package testutil

import (
	"database/sql"
	"testing"

	"hearthplan/internal/db"
)

// NewTestDB opens a fresh in-memory database with the household schema
// applied. Cleanup closes it when the test finishes, so each test gets an
// isolated week store.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps the test database in a real UnitOfWork, so rollback
// behavior in tests matches production.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
