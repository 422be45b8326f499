// Package embedded carries the compiled-in static model catalogs.
// One YAML file per provider under models/, named after the provider ID.
package embedded

import "embed"

// FS holds the embedded static catalog files.
//
//go:embed models/*.yaml
var FS embed.FS
