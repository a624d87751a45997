package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ewagner/pennybook"
)

type addCmd struct {
	description string
	amount      string
	category    string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `pny add -d <description> -a <amount> [-c <category>] [-date <YYYY-MM-DD>]

  Records one expense. The amount is a non-negative decimal with at most two
  fractional digits, in the base currency. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description (required)")
	f.StringVar(&c.amount, "a", "", "Amount, e.g. 12.50 (required)")
	f.StringVar(&c.category, "c", "Other", "Category label")
	f.StringVar(&c.date, "date", "", "Date, YYYY-MM-DD (defaults to today)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		c.date = pennybook.Today().String()
	}

	// Collect every field validation before deciding.
	checks := []pennybook.Validation{
		pennybook.ValidateDescription(c.description),
		pennybook.ValidateAmount(c.amount),
		pennybook.ValidateDate(c.date),
		pennybook.ValidateCategory(c.category),
	}
	failed := false
	for _, check := range checks {
		if !check.Valid {
			fmt.Fprintf(os.Stderr, "Error: %s\n", check.Error)
			failed = true
		}
	}
	if failed {
		return subcommands.ExitUsageError
	}

	amount, err := pennybook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	tx := pennybook.NewTransaction("", c.description, amount, c.category, pennybook.MustParseDate(c.date))
	tx, err = store.Add(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s (%s)\n", tx.Description, tx.ID)
	return subcommands.ExitSuccess
}
