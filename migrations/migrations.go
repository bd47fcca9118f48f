// Package migrations embeds the goose SQL migrations for the application
// schema.
package migrations

import "embed"

// Files holds the embedded SQL migration files.
//
//go:embed *.sql
var Files embed.FS
