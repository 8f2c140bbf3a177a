package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonbook/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect recorded discovery and coach events",
}

var eventsDiscoveryCmd = &cobra.Command{
	Use:   "discovery",
	Short: "List recent step discovery runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, opts, err := openEvents(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.DiscoveryRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No discovery events found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-36s  %-32s  %-6s  %-5s  %-5s  %s\n",
			"Seq", "Timestamp", "Session", "Base path", "Probed", "Found", "Steps", "Ms")
		fmt.Fprintln(out, strings.Repeat("─", 128))
		for _, e := range events {
			fmt.Fprintf(out, "%-5d  %-19s  %-36s  %-32s  %-6d  %-5d  %-5d  %d\n",
				e.Sequence,
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.SessionID,
				truncate(e.BasePath, 32),
				e.Probed,
				e.Found,
				e.Steps,
				e.Duration.Milliseconds(),
			)
		}
		return nil
	},
}

var eventsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "List recent coach LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		purpose, _ := cmd.Flags().GetString("purpose")
		st, opts, err := openEvents(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.LLMRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗ " + e.ErrorMessage
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{eventsDiscoveryCmd, eventsLLMCmd} {
		c.Flags().Int("limit", 20, "Maximum number of events to show")
		c.Flags().Int64("after", 0, "Only events after this sequence number")
		eventsCmd.AddCommand(c)
	}
	eventsLLMCmd.Flags().String("purpose", "", "Filter by purpose")
}

func openEvents(cmd *cobra.Command) (*store.Store, store.QueryOpts, error) {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return nil, store.QueryOpts{}, err
	}
	st, err := openStore(cfg)
	if err != nil {
		return nil, store.QueryOpts{}, err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	after, _ := cmd.Flags().GetInt64("after")
	return st, store.QueryOpts{Limit: limit, After: after}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
