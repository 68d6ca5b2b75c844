package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/undercover/internal/collector"
	"github.com/abhisek/undercover/internal/logging"
	"github.com/spf13/cobra"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run a local telemetry collector",
	Long: `Serve the telemetry endpoint locally. Point UNDERCOVER_TELEMETRY_URL at
http://<addr>/comments to keep study data on this machine; export it from
http://<addr>/comments.csv.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.CollectorAddr
		}

		logger := logging.New(os.Stderr, cfg.SlogLevel())
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := collector.New(st.EventRepo(), logger).ListenAndServe(ctx, addr); err != nil {
			return fmt.Errorf("collector: %w", err)
		}
		return nil
	},
}

func init() {
	collectCmd.Flags().String("addr", "", "Listen address (default from UNDERCOVER_COLLECT_ADDR)")
}
