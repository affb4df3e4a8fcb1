// Package migrations holds the SQLite schema of the user store
package migrations

import "embed"

// FS contains the embedded user store migrations.
//
//go:embed *.sql
var FS embed.FS
