package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for lounge",
	Long:  `Display detailed help for all lounge commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lounge %s (commit %s, built %s)\n", version, commit, date)
	},
}

func showCustomHelp() {
	fmt.Print(`
██╗      ██████╗ ██╗   ██╗███╗   ██╗ ██████╗ ███████╗
██║     ██╔═══██╗██║   ██║████╗  ██║██╔════╝ ██╔════╝
██║     ██║   ██║██║   ██║██╔██╗ ██║██║  ███╗█████╗
██║     ██║   ██║██║   ██║██║╚██╗██║██║   ██║██╔══╝
███████╗╚██████╔╝╚██████╔╝██║ ╚████║╚██████╔╝███████╗
╚══════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝ ╚══════╝

lounge - gaming lounge front desk

CUSTOMERS:

  add <name> <phone>      Register a new customer
  edit <id>               Change name/phone (--name, --phone)
  rm <id>                 Delete a customer and all their sessions
  ls                      List customers with credit and live timers
  search <term>           Find customers by name or phone
  credit <id> <minutes>   Grant (or debit) prepaid minutes

SESSIONS:

  session <customer-id>   Start a timed session and open the countdown
    -l, --length          Length: 45, 90m, 1.5h, 1h30m
    -p, --price           Hourly price
    -c, --credit          Fund from prepaid credit (price becomes 0)
    --paid                Mark paid up front
    -n, --note            Free-text note
    --no-ui               Skip the countdown view
  sessions <customer-id>  List a customer's sessions grouped by day
  pay <session-id>        Toggle paid/unpaid
  rm-session <id>         Delete a session (credit minutes flow back)

TIMERS:

  pause <session-id>      Freeze a countdown
  resume <session-id>     Continue from where it froze
  stop <session-id>       Discard the countdown (no credit back)
  bank <session-id>       Save remaining whole minutes as credit

SHOP:

  watch                   Live dashboard with countdowns and controls
  stats                   Customer/session/revenue totals
  export                  Write everything to a dated JSON file
  import <file>           Replace everything from a JSON export
  clear                   Erase all data

Timers keep counting while lounge is closed; expired ones are cleaned
up the next time any command runs.

`)
}
