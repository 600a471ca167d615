package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careerhub/jobboard-client/internal/core/ports"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in and persist the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !app.Auth.Login(cmd.Context(), args[0], args[1]) {
			return fmt.Errorf("login failed")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and erase the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Auth.Logout(cmd.Context())
		return nil
	},
}

var registerFlags struct {
	role    string
	company string
	phone   string
	address string
}

var registerCmd = &cobra.Command{
	Use:   "register <first> <last> <email> <password> <confirm-password>",
	Short: "Create an account (does not sign you in)",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := ports.RegistrationDraft{
			FirstName:       args[0],
			LastName:        args[1],
			Email:           args[2],
			Password:        args[3],
			ConfirmPassword: args[4],
			Role:            registerFlags.role,
			CompanyName:     registerFlags.company,
			Phone:           registerFlags.phone,
			Address:         registerFlags.address,
		}
		if !app.Auth.Register(cmd.Context(), draft) {
			return fmt.Errorf("registration failed")
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ident, ok := app.Auth.Current()
		if !ok {
			fmt.Println("not signed in")
			return nil
		}
		fmt.Printf("%s <%s> — %s (id %d)\n", ident.FullName(), ident.Email, ident.Role, ident.ID)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerFlags.role, "role", "EMPLOYEE", "account role: ADMIN, EMPLOYER or EMPLOYEE")
	registerCmd.Flags().StringVar(&registerFlags.company, "company", "", "company name (employers)")
	registerCmd.Flags().StringVar(&registerFlags.phone, "phone", "", "contact phone")
	registerCmd.Flags().StringVar(&registerFlags.address, "address", "", "contact address")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd)
}
