// Package migrations holds embedded goose SQL migrations shared by the
// PostgreSQL and SQLite backends.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
