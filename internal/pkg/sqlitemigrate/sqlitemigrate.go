// Package sqlitemigrate applies embedded SQL migrations to a SQLite database
package sqlitemigrate

import (
	"context"
	"database/sql"
	"io/fs"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
)

const (
	migrationTable = "schema_migrations"

	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// Config contains the migration source
type Config struct {
	DB    *sql.DB
	FS    fs.FS
	Clock clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.DB == nil {
		vb.RequiredField("db")
	}
	if cfg.FS == nil {
		vb.RequiredField("fs")
	}
	return vb.Build()
}

// Apply executes every *.sql file at the root of cfg.FS, in name order, at
// most once. Each file runs in its own transaction together with its
// bookkeeping row, and returns the names applied by this call.
func Apply(ctx context.Context, cfg *Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	entries, err := fs.ReadDir(cfg.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migrations")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := cfg.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return nil, errors.Wrap(err, "failed to ensure migration table")
	}

	applied := []string{}
	for _, file := range files {
		done, err := isApplied(ctx, cfg.DB, file)
		if err != nil {
			return applied, errors.Wrapf(err, "failed to check migration %s", file)
		}
		if done {
			continue
		}

		content, err := fs.ReadFile(cfg.FS, file)
		if err != nil {
			return applied, errors.Wrapf(err, "failed to read migration %s", file)
		}
		up := ExtractUp(string(content))
		if strings.TrimSpace(up) == "" {
			continue
		}

		if err := applyOne(ctx, cfg.DB, file, up, c.Now().UTC().UnixMilli()); err != nil {
			return applied, err
		}
		applied = append(applied, file)
	}

	return applied, nil
}

func applyOne(ctx context.Context, db *sql.DB, name, up string, appliedAt int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to begin migration %s", name)
	}

	if _, err := tx.ExecContext(ctx, up); err != nil && !IsAlreadyExists(err) {
		_ = tx.Rollback()
		return errors.Wrapf(err, "failed to execute migration %s", name).WithMeta("migration", name)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		name, appliedAt,
	); err != nil {
		_ = tx.Rollback()
		return errors.Wrapf(err, "failed to record migration %s", name)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed to commit migration %s", name)
	}
	return nil
}

// ExtractUp returns the SQL between the Up and Down markers. A file without
// an Up marker is returned whole.
func ExtractUp(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	rest := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(rest, downMarker); downIdx != -1 {
		return rest[:downIdx]
	}
	return rest
}

// IsAlreadyExists reports whether a DDL error means the object is already there
func IsAlreadyExists(err error) bool {
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

func isApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var found int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
