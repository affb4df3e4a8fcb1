package testutils

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"
)

// CreateTestDB opens a private in-memory SQLite database. The pool is limited
// to one connection because every new :memory: connection is a new database.
func CreateTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "failed to open sqlite")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
