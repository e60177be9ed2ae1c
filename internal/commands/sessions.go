package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramikhoury/lounge/internal/parser"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [customer-id]",
	Short: "List a customer's sessions grouped by day",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		customerID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid customer ID '%s'\n", args[0])
			return
		}

		customer, err := appStore.FindCustomer(customerID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		stats, _ := appStore.CustomerStats(customerID)

		fmt.Printf("Sessions for %s - %d total, %s played, %s spent, %d min credit\n",
			customer.Name,
			stats.SessionCount,
			parser.FormatMinutes(stats.TotalMinutes),
			formatMoney(stats.TotalSpent),
			stats.Credit)

		days := appStore.SessionsByDay(customerID)
		if len(days) == 0 {
			fmt.Println("\nNo sessions yet.")
			return
		}

		for _, day := range days {
			fmt.Printf("\n%s\n%s\n", day.Date, strings.Repeat("-", 78))
			for _, session := range day.Sessions {
				payment := "unpaid"
				if session.IsPaid {
					payment = "paid"
				}

				timerCol := ""
				if t, ok := appStore.TimerFor(session.ID); ok {
					remaining, _ := appStore.RemainingSeconds(session.ID)
					if t.Paused {
						timerCol = fmt.Sprintf("  ⏸ %s left", formatCountdown(remaining))
					} else {
						timerCol = fmt.Sprintf("  ▶ %s left", formatCountdown(remaining))
					}
				}

				creditBadge := ""
				if session.UsedCredit > 0 {
					creditBadge = fmt.Sprintf("  [credit: %d min]", session.UsedCredit)
				}

				fmt.Printf("#%d  %s  %-9s %-10s %-8s%s%s\n",
					session.ID,
					session.Date.Format("15:04"),
					parser.FormatMinutes(session.Minutes()),
					formatMoney(session.Total),
					payment,
					creditBadge,
					timerCol)
				if session.Notes != "" {
					fmt.Printf("    note: %s\n", session.Notes)
				}
			}
		}
	}),
}

var payCmd = &cobra.Command{
	Use:   "pay [session-id]",
	Short: "Toggle a session's payment status",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessionID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		session, err := appStore.TogglePayment(sessionID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if session.IsPaid {
			fmt.Printf("💰 Session #%d marked paid (%s)\n", session.ID, formatMoney(session.Total))
		} else {
			fmt.Printf("Session #%d marked unpaid\n", session.ID)
		}
	}),
}

var removeSessionCmd = &cobra.Command{
	Use:   "rm-session [session-id]",
	Short: "Delete a session, refunding any credit it used",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessionID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Delete session #%d?", sessionID)) {
			fmt.Println("Cancelled.")
			return
		}

		refunded, err := appStore.DeleteSession(sessionID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted session #%d\n", sessionID)
		if refunded > 0 {
			fmt.Printf("  Refunded %d credit minutes to the customer\n", refunded)
		}
	}),
}

func init() {
	removeSessionCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}
