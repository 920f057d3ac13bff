package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/tvaleev/studypath/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is configured with foreign keys enabled and WAL mode.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on&_journal_mode=WAL")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	migrations, err := db.MigrationFiles()
	require.NoError(t, err)

	for _, migration := range migrations {
		sqlStr, err := db.MigrationSQL(migration)
		require.NoError(t, err, "failed to read migration %s", migration)

		_, err = conn.Exec(sqlStr)
		require.NoError(t, err, "failed to apply migration %s", migration)
	}

	return conn
}
