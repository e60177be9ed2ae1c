package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ramikhoury/lounge/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List customers",
	Long:    "List all registered customers with credit and live timer state",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		customers := appStore.Customers()
		if len(customers) == 0 {
			fmt.Println("No customers yet. Use 'lounge add \"Name\" <phone>' to register the first one.")
			return
		}
		renderCustomerTable(customers)
	}),
}

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search customers by name or phone",
	Long: `Search customers with case-insensitive substring matching over name
and phone. Without a term everybody is listed.`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		term := ""
		if len(args) > 0 {
			term = args[0]
		}

		customers := appStore.SearchCustomers(term)
		fmt.Printf("Search results for '%s' (%d found):\n\n", term, len(customers))
		if len(customers) == 0 {
			fmt.Println("No customers matched your search.")
			return
		}
		renderCustomerTable(customers)
	}),
}

func renderCustomerTable(customers []models.Customer) {
	fmt.Printf("%-15s %-25s %-14s %-12s %-8s %s\n", "ID", "NAME", "PHONE", "JOINED", "CREDIT", "TIMER")
	fmt.Println(strings.Repeat("-", 90))

	for _, customer := range customers {
		name := customer.Name
		if len(name) > 23 {
			name = name[:20] + "..."
		}

		timerCol := "-"
		if sessionID, t, ok := appStore.CustomerTimer(customer.ID); ok {
			remaining, _ := appStore.RemainingSeconds(sessionID)
			state := "▶"
			if t.Paused {
				state = "⏸"
			}
			timerCol = fmt.Sprintf("%s %s", state, formatCountdown(remaining))
		}

		fmt.Printf("%-15d %-25s %-14s %-12s %-8d %s\n",
			customer.ID,
			name,
			customer.Phone,
			customer.JoinDate,
			customer.Credit,
			timerCol)
	}
}

// formatCountdown renders seconds as MM:SS.
func formatCountdown(seconds float64) string {
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// formatMoney renders an amount with the configured currency label.
func formatMoney(amount float64) string {
	return fmt.Sprintf("%s %s", humanize.CommafWithDigits(amount, 0), cfg.Currency)
}
