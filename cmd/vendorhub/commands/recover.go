package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// recover: compose the administrator notification for a manual password
// reset. No credential operation happens here.
func recoverCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Ask the administrator for a password reset",
		RunE: func(cmd *cobra.Command, args []string) error {
			intent, err := appCtx.Recovery.Request(email)
			if err != nil {
				return err
			}
			fmt.Printf("Password reset request for %s sent to %s.\n", intent.Requester, intent.To)
			fmt.Println("The administrator will contact you with new credentials.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "the account email to reset")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
