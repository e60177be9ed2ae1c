package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramikhoury/lounge/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a JSON file",
	Long: `Write customers, sessions and active timers to a single JSON
document. The default filename embeds today's date.`,
	Run: withStore(func(cmd *cobra.Command, args []string) {
		data, err := appStore.Export()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = store.ExportFilename(time.Now())
		}

		if err := os.WriteFile(out, data, 0644); err != nil {
			fmt.Printf("Error: failed to write %s: %v\n", out, err)
			return
		}

		stats := appStore.Stats()
		fmt.Printf("📦 Exported %d customers and %d sessions to %s\n",
			stats.TotalCustomers, stats.TotalSessions, out)
	}),
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import data from a JSON export",
	Long: `Replace all data with the contents of a JSON export. The file must
carry the customers, sessions and activeTimers keys; anything else is
rejected without touching current data.`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error: failed to read %s: %v\n", args[0], err)
			return
		}

		if err := appStore.Import(data); err != nil {
			var formatErr *store.FormatError
			if errors.As(err, &formatErr) {
				fmt.Printf("Error: invalid file format: %s\n", formatErr.Reason)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}

		stats := appStore.Stats()
		fmt.Printf("📥 Imported %d customers and %d sessions\n",
			stats.TotalCustomers, stats.TotalSessions)
	}),
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all customers, sessions and timers",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Erase ALL data? This cannot be undone!") {
			fmt.Println("Cancelled.")
			return
		}

		if err := appStore.ClearAll(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("🧹 All data erased.")
	}),
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file path")
	clearCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}
