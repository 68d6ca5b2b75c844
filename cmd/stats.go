package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/undercover/internal/content"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show investigation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if stats.SessionsCompleted == 0 && stats.Attempts == 0 {
			fmt.Fprintln(out, "No cases closed yet. Run `undercover` to start an investigation.")
			return nil
		}

		fmt.Fprintf(out, "Cases closed:      %d\n", stats.SessionsCompleted)
		fmt.Fprintf(out, "Cases abandoned:   %d\n", stats.SessionsAbandoned)
		fmt.Fprintf(out, "Scenarios:         %d (%d correct, %.0f%%)\n",
			stats.Attempts, stats.Correct, stats.Accuracy())
		fmt.Fprintf(out, "Best score:        %d\n", stats.BestScore)
		fmt.Fprintf(out, "Best streak:       %d\n", stats.BestStreak)

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-22s  %8s  %10s\n", "Level", "Sessions", "Best score")
		fmt.Fprintln(out, strings.Repeat("─", 44))
		for _, lvl := range content.Levels() {
			ls := stats.ByLevel[string(lvl)]
			fmt.Fprintf(out, "%-22s  %8d  %10d\n", lvl.Info().Name, ls.Sessions, ls.BestScore)
		}
		return nil
	},
}
