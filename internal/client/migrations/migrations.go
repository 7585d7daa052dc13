// Package migrations embeds the SQL migrations of the client state DB.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
