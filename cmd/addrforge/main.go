// Command addrforge generates synthetic postal addresses from the command
// line and seeds them into PostgreSQL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "addrforge",
		Short: "Generate synthetic US postal addresses",
		Long: `addrforge produces plausible-looking fake postal addresses from static
reference tables. City, county, and ZIP code in each record always agree with
one another. Use "generate" to print addresses and "seed" to load them into a
PostgreSQL table.`,
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd(), newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
