package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizkeep/quizkeep/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the review database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}
