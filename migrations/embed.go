// Package migrations embeds the goose migrations of the lexicon catalog.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
