package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type budgetCmd struct {
	cap string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set the spending cap" }
func (*budgetCmd) Usage() string {
	return `pny budget -cap <value>

  Sets the budget threshold in the active currency. 0 disables budget
  tracking; invalid or negative input is treated as 0.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cap, "cap", "", "Budget cap, e.g. 500 (required)")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cap == "" {
		fmt.Fprintln(os.Stderr, "Error: -cap is required.")
		return subcommands.ExitUsageError
	}

	// Invalid input coerces to 0, meaning "no cap".
	cap, err := decimal.NewFromString(c.cap)
	if err != nil {
		cap = decimal.Zero
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.SetBudgetCap(cap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	saved := store.Settings().BudgetCap
	if saved.IsZero() {
		fmt.Println("Budget tracking disabled")
	} else {
		fmt.Printf("Budget cap set to %s %s\n", saved, store.Settings().ActiveCurrency)
	}
	return subcommands.ExitSuccess
}
