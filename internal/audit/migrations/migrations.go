// Package migrations embeds the SQL migrations for the audit schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
