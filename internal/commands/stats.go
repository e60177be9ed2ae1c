package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show shop-wide totals",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		stats := appStore.Stats()

		fmt.Println("📊 Lounge stats")
		fmt.Printf("  Customers:       %d\n", stats.TotalCustomers)
		fmt.Printf("  Sessions:        %d\n", stats.TotalSessions)
		fmt.Printf("  Revenue (paid):  %s\n", formatMoney(stats.TotalRevenue))
		fmt.Printf("  Active sessions: %d\n", stats.ActiveSessions)
	}),
}
