package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiCfg := api.ConfigFromEnv()
		if !apiCfg.Configured() {
			return fmt.Errorf("TUTOR_API_URL is not set; there is no backend to sign in to")
		}

		creds, err := credentialStore()
		if err != nil {
			return err
		}
		client := api.New(apiCfg, creds)

		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")
		name, _ := cmd.Flags().GetString("name")
		signup, _ := cmd.Flags().GetBool("signup")

		reader := bufio.NewReader(cmd.InOrStdin())
		if email == "" {
			fmt.Print("Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}
		if signup && name == "" {
			fmt.Print("Name: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			name = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password := strings.TrimRight(line, "\r\n")

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		req := api.AuthRequest{Name: name, Email: email, Password: password}
		var cred *auth.Credential
		if signup {
			cred, err = client.Signup(ctx, role, req)
		} else {
			cred, err = client.Login(ctx, role, req)
		}
		if err != nil {
			return fmt.Errorf("sign in: %w", err)
		}

		if err := creds.Save(cred); err != nil {
			return fmt.Errorf("save credential: %w", err)
		}

		if cred.User != nil {
			fmt.Fprintf(os.Stdout, "Signed in as %s (%s)\n", cred.User.Name, cred.User.Role)
		} else {
			fmt.Fprintln(os.Stdout, "Signed in")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("name", "", "Display name (signup only)")
	loginCmd.Flags().String("role", auth.RoleStudent, "Account role: student or teacher")
	loginCmd.Flags().Bool("signup", false, "Create a new account instead of signing in")
}
