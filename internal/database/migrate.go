package database

import (
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"

	"github.com/quizkeep/quizkeep/schemas"
)

// Migrate applies the embedded up migrations in filename order. Statements
// use IF NOT EXISTS so reapplying is harmless.
func Migrate(db *sqlx.DB) error {
	files, err := fs.Glob(schemas.Migrations, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob(migrations) > %w", err)
	}

	for _, file := range files {
		script, err := schemas.Migrations.ReadFile(file)
		if err != nil {
			return fmt.Errorf("schemas.Migrations.ReadFile(%s) > %w", file, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("db.Exec(%s) > %w", file, err)
		}
	}
	return nil
}
