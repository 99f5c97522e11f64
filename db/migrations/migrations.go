// Package migrations embeds the schema of the campaign API: sellers with
// their emerald balances and the campaigns funded from them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version cmd/api migrates to on start.
const Version = 1
