package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [name] [phone]",
	Short: "Register a new customer",
	Long: `Register a new customer with a name and phone number.

New customers start with zero prepaid credit; use 'lounge credit' to
grant minutes or 'lounge bank' to save unused session time.

Example:
  lounge add "Ahmad Haddad" 0944123456`,
	Args: cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		customer, err := appStore.AddCustomer(args[0], args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Registered customer #%d: %s\n", customer.ID, customer.Name)
		fmt.Printf("  Phone: %s\n", customer.Phone)
		fmt.Printf("  Joined: %s\n", customer.JoinDate)
	}),
}
