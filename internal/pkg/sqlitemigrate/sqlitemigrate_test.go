package sqlitemigrate_test

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/sqlitemigrate"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

func TestExtractUp(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected string
	}{
		{"no markers", "CREATE TABLE a (id INTEGER);", "CREATE TABLE a (id INTEGER);"},
		{"up only", "-- +migrate Up\nCREATE TABLE a (id INTEGER);", "\nCREATE TABLE a (id INTEGER);"},
		{"up and down", "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;", "\nCREATE TABLE a (id INTEGER);\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sqlitemigrate.ExtractUp(tc.content))
		})
	}
}

func TestApplyRunsEachFileOnce(t *testing.T) {
	ctx := context.Background()
	db := testutils.CreateTestDB(t)
	migrations := fstest.MapFS{
		"0002_b.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE b (id INTEGER);\n-- +migrate Down\nDROP TABLE b;")},
		"0001_a.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE a (id INTEGER);")},
		"README.md":  {Data: []byte("not a migration")},
	}
	cfg := &sqlitemigrate.Config{
		DB:    db,
		FS:    migrations,
		Clock: clock.NewFixed(time.Unix(1700000000, 0)),
	}

	applied, err := sqlitemigrate.Apply(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_a.sql", "0002_b.sql"}, applied)

	applied, err = sqlitemigrate.Apply(ctx, cfg)
	require.NoError(t, err)
	assert.Empty(t, applied)

	var appliedAt int64
	require.NoError(t, db.QueryRow("SELECT applied_at FROM schema_migrations WHERE name = ?", "0001_a.sql").Scan(&appliedAt))
	assert.Equal(t, int64(1700000000000), appliedAt)
}

func TestApplyStopsOnBrokenMigration(t *testing.T) {
	db := testutils.CreateTestDB(t)
	migrations := fstest.MapFS{
		"0001_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"0002_b.sql": {Data: []byte("CREATE TABLE oops (")},
	}

	applied, err := sqlitemigrate.Apply(context.Background(), &sqlitemigrate.Config{DB: db, FS: migrations})
	require.Error(t, err)
	assert.Equal(t, []string{"0001_a.sql"}, applied)
	assert.Equal(t, "0002_b.sql", errors.GetMeta(err)["migration"])
}

func TestApplyValidatesConfig(t *testing.T) {
	_, err := sqlitemigrate.Apply(context.Background(), &sqlitemigrate.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}
