package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ramikhoury/lounge/internal/logger"
	"github.com/ramikhoury/lounge/internal/parser"
	"github.com/ramikhoury/lounge/internal/store"
	"github.com/ramikhoury/lounge/internal/tui"
)

var sessionCmd = &cobra.Command{
	Use:   "session [customer-id]",
	Short: "Start a timed play session for a customer",
	Long: `Start a timed play session. Opens the countdown view by default,
use --no-ui for a simple start.

Examples:
  lounge session 1756712345678                  # default length and rate
  lounge session 1756712345678 -l 1.5h -p 6000  # 90 minutes at 6000/hour
  lounge session 1756712345678 -l 30 --credit   # 30 minutes from prepaid credit`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		customerID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid customer ID '%s'\n", args[0])
			return
		}

		minutes := cfg.DefaultSessionMinutes
		if lengthStr, _ := cmd.Flags().GetString("length"); lengthStr != "" {
			minutes, err = parser.ParseSessionLength(lengthStr)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		price := cfg.DefaultHourlyPrice
		if cmd.Flags().Changed("price") {
			price, _ = cmd.Flags().GetFloat64("price")
		}

		useCredit, _ := cmd.Flags().GetBool("credit")
		paid, _ := cmd.Flags().GetBool("paid")
		note, _ := cmd.Flags().GetString("note")

		session, err := appStore.StartSession(store.StartSessionRequest{
			CustomerID:   customerID,
			Minutes:      minutes,
			PricePerHour: price,
			UseCredit:    useCredit,
			Notes:        note,
			IsPaid:       paid,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		customer, _ := appStore.FindCustomer(customerID)

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏱️  Started %s session for %s\n", parser.FormatMinutes(session.Minutes()), customer.Name)
			if session.UsedCredit > 0 {
				fmt.Printf("  Funded by credit: %d minutes (balance now %d)\n", session.UsedCredit, customer.Credit)
			} else {
				fmt.Printf("  Total: %s\n", formatMoney(session.Total))
			}
			fmt.Printf("  Session ID: %d\n", session.ID)
			return
		}

		// The sweeper expires timers while the countdown is on screen.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go appStore.RunSweeper(ctx, cfg.SweepInterval, logger.Log)

		if err := tui.RunCountdown(appStore, cfg, session, customer); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var pauseCmd = &cobra.Command{
	Use:   "pause [session-id]",
	Short: "Pause a running countdown",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessionID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		changed, err := appStore.PauseTimer(sessionID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !changed {
			fmt.Printf("Nothing to pause for session #%d\n", sessionID)
			return
		}

		remaining, _ := appStore.RemainingSeconds(sessionID)
		fmt.Printf("⏸️  Paused session #%d with %s left\n", sessionID, formatCountdown(remaining))
	}),
}

var resumeCmd = &cobra.Command{
	Use:   "resume [session-id]",
	Short: "Resume a paused countdown",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessionID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		changed, err := appStore.ResumeTimer(sessionID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !changed {
			fmt.Printf("Nothing to resume for session #%d\n", sessionID)
			return
		}

		remaining, _ := appStore.RemainingSeconds(sessionID)
		fmt.Printf("▶️  Resumed session #%d, %s left\n", sessionID, formatCountdown(remaining))
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop [session-id]",
	Short: "Stop a countdown without banking the rest",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessionID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		changed, err := appStore.StopTimer(sessionID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !changed {
			fmt.Printf("No running timer for session #%d\n", sessionID)
			return
		}

		fmt.Printf("⏹️  Stopped the countdown for session #%d\n", sessionID)
	}),
}

var bankCmd = &cobra.Command{
	Use:   "bank [session-id]",
	Short: "Save a countdown's remaining minutes as credit",
	Long: `End a session's countdown and bank the remaining whole minutes onto
the customer's prepaid balance. The session record stays as booked.`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessionID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		minutes, err := appStore.SaveRemainingAsCredit(sessionID)
		if errors.Is(err, store.ErrNoTimeRemaining) {
			fmt.Println("Less than a minute left - nothing to bank.")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🏦 Banked %d minutes as credit for session #%d\n", minutes, sessionID)
	}),
}

func init() {
	sessionCmd.Flags().StringP("length", "l", "", "Session length: 45, 90m, 1.5h, 1h30m (default from config)")
	sessionCmd.Flags().Float64P("price", "p", 0, "Hourly price (default from config)")
	sessionCmd.Flags().BoolP("credit", "c", false, "Fund the session from prepaid credit")
	sessionCmd.Flags().Bool("paid", false, "Mark the session as paid up front")
	sessionCmd.Flags().StringP("note", "n", "", "Free-text note")
	sessionCmd.Flags().Bool("no-ui", false, "Start without the countdown view")
}
