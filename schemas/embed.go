// Package schemas provides the embedded SQL schema for the review database.
package schemas

import "embed"

// Migrations contains the SQL migration files applied at startup and by
// the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
