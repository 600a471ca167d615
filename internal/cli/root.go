package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var app *App

var rootCmd = &cobra.Command{
	Use:           "jobctl",
	Short:         "Command-line client for the job board",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("ENV") != "production" {
			_ = godotenv.Load()
		}
		var err error
		app, err = newApp(cmd.Context())
		return err
	},
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jobctl:", err)
		os.Exit(1)
	}
}
