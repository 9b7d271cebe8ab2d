// Package tileset provides embedded tileset definitions and utilities for
// loading them.
package tileset

import "embed"

// dataFS embeds all JSON tileset files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
