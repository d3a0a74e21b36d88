package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := credentialStore()
		if err != nil {
			return err
		}
		if err := creds.Clear(); err != nil {
			return fmt.Errorf("clear credential: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}
