// Package migrations embeds the audit log's goose migration files so
// they ship inside the compiled binary instead of needing a separate
// deploy artifact.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
