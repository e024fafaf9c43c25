// Package migrations provides the embedded SQL schema.
package migrations

import "embed"

// Files holds all .sql files in this directory (order matters: 001, 002, ...).
//
//go:embed *.sql
var Files embed.FS
