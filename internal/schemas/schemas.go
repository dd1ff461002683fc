// Package schemas содержит JSON-схемы входных датасетов, встроенные в бинарь.
package schemas

import "embed"

//go:embed datasets
var SchemasFS embed.FS
