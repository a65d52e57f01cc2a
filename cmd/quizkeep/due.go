package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quizkeep/quizkeep/internal/activity"
	"github.com/quizkeep/quizkeep/internal/cli"
	"github.com/quizkeep/quizkeep/internal/review"
	"github.com/quizkeep/quizkeep/internal/settings"
)

func newDueCommand() *cobra.Command {
	var userID string
	var limit int

	command := &cobra.Command{
		Use:   "due",
		Short: "List a user's items due for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			service := review.NewService(
				db,
				review.NewDBItemRepository(),
				settings.NewDBPacingReader(db),
				activity.NewCounter(db, activity.DefaultRetryAttempts),
			)
			return cli.NewDueListCLI(service, os.Stdout).Run(cmd.Context(), userID, limit)
		},
	}

	command.Flags().StringVar(&userID, "user", "", "user id to list due items for")
	command.Flags().IntVar(&limit, "limit", 20, "maximum number of items to list")
	_ = command.MarkFlagRequired("user")

	return command
}
