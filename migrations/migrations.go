// Package migrations embeds the goose SQL migrations so the server binary
// and tests can apply them without access to the source tree on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
