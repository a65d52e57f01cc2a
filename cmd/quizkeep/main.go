package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "quizkeep",
		Short:         "Operate the quizkeep review scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "path to the configuration file")

	rootCommand.AddCommand(newMigrateCommand())
	rootCommand.AddCommand(newDueCommand())

	return rootCommand
}
