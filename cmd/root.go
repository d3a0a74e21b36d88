package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/app"
	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
	"github.com/hcl-ram/AI-Tutor-sf/internal/llm"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quizgen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/recommend"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ai-tutor",
	Short: "AI tutor for school students",
	Long:  "A terminal tutor for school students: guided quizzes, personalised feedback, and exam study plans.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTOR_DB env var)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TUTOR_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// credentialStore opens the on-disk credential store.
func credentialStore() (auth.Store, error) {
	path, err := auth.DefaultCredentialPath()
	if err != nil {
		return nil, fmt.Errorf("resolve credential path: %w", err)
	}
	return auth.NewFileStore(path), nil
}

// runApp opens the store, builds every dependency, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	creds, err := credentialStore()
	if err != nil {
		return err
	}

	apiCfg := api.ConfigFromEnv()
	client := api.New(apiCfg, creds)

	deps := app.Deps{
		Creds:       creds,
		Gate:        auth.NewGate(creds),
		Client:      client,
		Recommender: recommend.New(client, st.SnapshotRepo()),
		Events:      st.EventRepo(),
	}

	// Question source: the backend when one is configured, otherwise a
	// direct LLM provider.
	if apiCfg.Configured() {
		deps.Generator = quizgen.NewRemote(client)
	} else {
		provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "No backend or LLM provider configured:", err)
			fmt.Fprintln(os.Stderr, "Set TUTOR_API_URL or an LLM API key. Quiz generation will fail until then.")
		} else {
			deps.Generator = quizgen.NewLLM(provider, quizgen.DefaultConfig())
		}
	}
	if deps.Generator == nil {
		deps.Generator = quizgen.Unavailable{}
	}

	return app.Run(deps)
}
