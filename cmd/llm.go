package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().RecentLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PROVIDER\tMODEL\tPURPOSE\tIN\tOUT\tLATENCY\tSTATUS")
		for _, e := range events {
			status := "ok"
			if !e.Success {
				status = "error: " + truncate(e.ErrorMessage, 40)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%dms\t%s\n",
				e.Provider, truncate(e.Model, 20), truncate(e.Purpose, 10),
				e.InputTokens, e.OutputTokens, e.LatencyMs, status)
		}
		return w.Flush()
	},
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	llmCmd.AddCommand(llmListCmd)
}
