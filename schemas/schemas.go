// Package schemas embeds the JSON Schemas the service validates
// upstream payloads against.
package schemas

import "embed"

//go:embed catalog/*.json
var SchemasFS embed.FS
