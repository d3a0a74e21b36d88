package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := credentialStore()
		if err != nil {
			return err
		}

		cred, err := creds.Load()
		if err != nil {
			return fmt.Errorf("load credential: %w", err)
		}
		if cred == nil || cred.User == nil {
			fmt.Println("Not signed in.")
			return nil
		}

		decision := auth.NewGate(creds).Check(cred.User.Role, time.Now())
		if decision.Outcome != auth.Allow {
			fmt.Println("Session expired. Run `ai-tutor login` to sign in again.")
			return nil
		}

		fmt.Printf("%s <%s> (%s)\n", cred.User.Name, cred.User.Email, cred.User.Role)
		return nil
	},
}
