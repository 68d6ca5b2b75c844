package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/undercover/internal/content"
	"github.com/spf13/cobra"
)

var tacticsCmd = &cobra.Command{
	Use:   "tactics",
	Short: "List the tactic catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if check, _ := cmd.Flags().GetBool("check"); check {
			if err := content.Validate(); err != nil {
				return fmt.Errorf("content check failed: %w", err)
			}
			total := 0
			for _, lvl := range content.Levels() {
				total += content.ScenarioCount(lvl)
			}
			fmt.Fprintf(out, "OK: %d tactics, %d scenarios\n", len(content.Tactics()), total)
			return nil
		}

		category, _ := cmd.Flags().GetString("category")
		categories := content.AllCategories()
		if category != "" {
			categories = []content.Category{content.Category(category)}
		}

		count := 0
		for _, c := range categories {
			tactics := content.TacticsByCategory(c)
			if len(tactics) == 0 {
				return fmt.Errorf("no tactics found for category %q", c)
			}
			fmt.Fprintln(out, content.CategoryDisplayName(c))
			fmt.Fprintln(out, strings.Repeat("─", 60))
			for _, t := range tactics {
				fmt.Fprintf(out, "  %-26s  %s\n", t.ID, t.Name)
				count++
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%d tactics\n", count)
		return nil
	},
}

func init() {
	tacticsCmd.Flags().Bool("check", false, "Validate the catalog and scenario pools")
	tacticsCmd.Flags().String("category", "", "Filter by category (manipulative or neutral)")
}
