package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vendorhub/internal/domain"
	authsvc "vendorhub/internal/services/auth"
)

func loginCmd() *cobra.Command {
	var (
		email    string
		password string
		remember bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the VendorHub API",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := appCtx.Auth.Login(cmd.Context(), domain.Credentials{
				Email:      email,
				Password:   password,
				RememberMe: remember,
			})

			if res.Success {
				fmt.Println("Logged in.")
				if name, ok := appCtx.Auth.Session().User["full_name"].(string); ok {
					fmt.Printf("  welcome, %s\n", name)
				}
				return nil
			}

			if res.Kind == authsvc.FieldErrors {
				fmt.Println("Login input is invalid:")
				printFieldErrors(res.FieldErrors)
				return fmt.Errorf("%d field(s) need attention", len(res.FieldErrors))
			}
			return fmt.Errorf("login failed: %s", res.Message)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&remember, "remember", false, "persist the remember-me flag")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Auth.Logout()
			remembered, err := appCtx.Auth.Remembered()
			if err != nil {
				return err
			}
			fmt.Println("Logged out.")
			if remembered {
				fmt.Println("  remember-me stays set; it governs future auto-resume")
			}
			return nil
		},
	}
}
