package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ewagner/pennybook"
)

type editCmd struct {
	id          string
	description string
	amount      string
	category    string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify fields of an existing transaction" }
func (*editCmd) Usage() string {
	return `pny edit -id <id> [-d <description>] [-a <amount>] [-c <category>] [-date <YYYY-MM-DD>]

  Patches the given fields of one transaction; unset flags leave the field
  unchanged. Editing an unknown id is a no-op.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id (required)")
	f.StringVar(&c.description, "d", "", "New description")
	f.StringVar(&c.amount, "a", "", "New amount")
	f.StringVar(&c.category, "c", "", "New category")
	f.StringVar(&c.date, "date", "", "New date, YYYY-MM-DD")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	// Only flags the user actually set become part of the patch.
	var patch pennybook.Patch
	var checks []pennybook.Validation
	var usageErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			checks = append(checks, pennybook.ValidateDescription(c.description))
			patch.Description = &c.description
		case "a":
			checks = append(checks, pennybook.ValidateAmount(c.amount))
			amount, err := pennybook.ParseAmount(c.amount)
			if err != nil {
				usageErr = err
				return
			}
			patch.Amount = &amount
		case "c":
			checks = append(checks, pennybook.ValidateCategory(c.category))
			patch.Category = &c.category
		case "date":
			checks = append(checks, pennybook.ValidateDate(c.date))
			if day, err := pennybook.ParseDate(c.date); err == nil {
				patch.Date = &day
			}
		}
	})
	if usageErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", usageErr)
		return subcommands.ExitUsageError
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

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.Update(c.id, patch); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s\n", c.id)
	return subcommands.ExitSuccess
}
