package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/utils/logger"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !store.Session().LoggedIn() {
			fmt.Println("Already signed out.")
			return nil
		}

		// Best effort on the backend side; the local session is cleared
		// either way.
		if err := client.Auth.Logout(cmd.Context()); err != nil {
			logger.LogDebugf("backend logout failed: %v", err)
		}

		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
