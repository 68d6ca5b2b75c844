package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete local case history",
	Long: `Delete every recorded session and attempt from the local database.

The anonymous participant id is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("yes")
		if !force {
			fmt.Fprint(cmd.OutOrStdout(), "Delete all local case history? Type 'yes' to confirm: ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EventRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Case history cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
