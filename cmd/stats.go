package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics per subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		stats, err := st.EventRepo().StatsBySubject(ctx)
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No quizzes recorded yet.")
			return nil
		}

		fmt.Printf("%-18s  %8s  %9s  %8s\n", "SUBJECT", "ATTEMPTS", "QUESTIONS", "CORRECT")
		for _, s := range stats {
			pct := 0
			if s.Questions > 0 {
				pct = s.Correct * 100 / s.Questions
			}
			fmt.Printf("%-18s  %8d  %9d  %6d%%\n", s.Subject, s.Attempts, s.Questions, pct)
		}
		return nil
	},
}
