package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <customer-id>",
	Short: "Edit a customer's name or phone",
	Long: `Edit an existing customer. Fields not given keep their current value.

Usage:
  lounge edit 1756712345678 --name "New Name"
  lounge edit 1756712345678 --phone 0933000111`,
	Args: cobra.ExactArgs(1),
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

		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		if name == "" {
			name = customer.Name
		}
		if phone == "" {
			phone = customer.Phone
		}

		updated, err := appStore.EditCustomer(customerID, name, phone)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated customer #%d: %s (%s)\n", updated.ID, updated.Name, updated.Phone)
	}),
}

var creditCmd = &cobra.Command{
	Use:   "credit <customer-id> <minutes>",
	Short: "Grant or debit prepaid minutes",
	Long: `Adjust a customer's prepaid minute balance. Positive values grant
credit, negative values debit it; the balance never goes below zero.

Examples:
  lounge credit 1756712345678 30
  lounge credit 1756712345678 -- -15`,
	Args: cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		customerID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid customer ID '%s'\n", args[0])
			return
		}
		delta, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid minute amount '%s'\n", args[1])
			return
		}

		customer, err := appStore.GrantCredit(customerID, delta)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🪙 Credit for %s is now %d minutes\n", customer.Name, customer.Credit)
	}),
}

var removeCmd = &cobra.Command{
	Use:     "rm <customer-id>",
	Aliases: []string{"remove"},
	Short:   "Delete a customer and all their sessions",
	Args:    cobra.ExactArgs(1),
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

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Delete %s and all their sessions?", customer.Name)) {
			fmt.Println("Cancelled.")
			return
		}

		if err := appStore.DeleteCustomer(customerID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted customer #%d: %s\n", customerID, customer.Name)
	}),
}

func init() {
	editCmd.Flags().StringP("name", "n", "", "New name")
	editCmd.Flags().StringP("phone", "p", "", "New phone number")
	removeCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}
