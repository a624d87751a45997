package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	id  string
	all bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete a transaction, or the whole ledger" }
func (*removeCmd) Usage() string {
	return `pny remove -id <id>
pny remove -all

  Deletes one transaction by id, or with -all wipes the whole transaction
  list. Settings are kept either way.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id")
	f.BoolVar(&c.all, "all", false, "Delete every transaction")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" && !c.all {
		fmt.Fprintln(os.Stderr, "Error: either -id or -all is required.")
		return subcommands.ExitUsageError
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if c.all {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Removed all transactions")
		return subcommands.ExitSuccess
	}

	if err := store.Delete(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s\n", c.id)
	return subcommands.ExitSuccess
}
