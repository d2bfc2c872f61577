// Package testutil provides shared helpers for tests that need a database or
// a stand-in detection service.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/allisson/redactor/internal/database"
)

// operationLogsSchema mirrors the operation_logs migration so repository
// tests can run against a throwaway database without the migration tooling.
const operationLogsSchema = `
CREATE TABLE IF NOT EXISTS operation_logs (
    id TEXT PRIMARY KEY,
    request_id TEXT NOT NULL DEFAULT '',
    operation TEXT NOT NULL,
    document TEXT NOT NULL,
    status TEXT NOT NULL,
    entities INTEGER NOT NULL DEFAULT 0,
    conflicts INTEGER NOT NULL DEFAULT 0,
    detail TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_operation_logs_created_at ON operation_logs (created_at);
`

// SetupSQLiteDB opens a file-backed SQLite database in a temporary directory
// and applies the operation log schema. The database is closed automatically
// when the test finishes.
func SetupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Path:               filepath.Join(t.TempDir(), "redactor_test.db"),
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if _, err := db.Exec(operationLogsSchema); err != nil {
		t.Fatalf("failed to apply test schema: %v", err)
	}

	return db
}
