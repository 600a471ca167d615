package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careerhub/jobboard-client/internal/routing"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Show the navigation available to the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		role := ""
		if ident, ok := app.Auth.Current(); ok {
			role = ident.Role
		}
		entries, dashboard := routing.NavFor(role)
		for _, entry := range entries {
			fmt.Printf("%-18s %s\n", entry.Label, entry.Path)
		}
		fmt.Printf("\nyour dashboard: %s\n", dashboard)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}
