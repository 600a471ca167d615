package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/careerhub/jobboard-client/internal/core/domain"
	"github.com/careerhub/jobboard-client/internal/routing"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage job categories (admins)",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Listing is open to any signed-in role; mutations are admin-only.
		if err := app.requireAccess(routing.AllowRoles(domain.RoleAny)); err != nil {
			return err
		}
		cats, err := app.API.ListCategories(cmd.Context())
		if err != nil {
			return err
		}
		for _, cat := range cats {
			fmt.Printf("%d\t%s\n", cat.ID, cat.Name)
		}
		return nil
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(routing.AllowRoles(domain.RoleAdmin)); err != nil {
			return err
		}
		cat, err := app.API.CreateCategory(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("created category %d: %s\n", cat.ID, cat.Name)
		return nil
	},
}

var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(routing.AllowRoles(domain.RoleAdmin)); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category id %q", args[0])
		}
		if err := app.API.DeleteCategory(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("deleted category %d\n", id)
		return nil
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd, categoriesRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}
