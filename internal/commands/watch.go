package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramikhoury/lounge/internal/logger"
	"github.com/ramikhoury/lounge/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the live dashboard",
	Long: `Open the interactive dashboard: searchable customer list with live
countdowns, shop stats, and timer controls on the selected customer.`,
	Run: withStore(func(cmd *cobra.Command, args []string) {
		// The sweeper keeps expiring timers while the dashboard is up.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go appStore.RunSweeper(ctx, cfg.SweepInterval, logger.Log)

		if err := tui.RunDashboard(appStore, cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
