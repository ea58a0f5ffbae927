package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// health: liveness probe against the backend.
func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the API liveness endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := appCtx.API.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health probe failed: %w", err)
			}
			fmt.Printf("%s: %s\n", status.Status, status.Message)
			return nil
		},
	}
}
