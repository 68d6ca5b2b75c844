package cmd

import (
	"fmt"

	"github.com/abhisek/undercover/internal/config"
	"github.com/abhisek/undercover/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "undercover",
	Short: "Spot the manipulation tactics AI assistants use",
	Long: "AI Undercover - a terminal quiz game. Read simulated AI messages, name the\n" +
		"persuasion tactic each one uses, and race the clock for points.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides UNDERCOVER_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tacticsCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then UNDERCOVER_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return store.ResolveDBPath(p)
	}
	return store.ResolveDBPath(cfg.DBPath)
}

// openStore loads configuration and opens the local database.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}
