package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ewagner/pennybook"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge transactions from a JSON file" }
func (*importCmd) Usage() string {
	return `pny import <file.json>

  Validates the file as a JSON array of transaction objects and merges it
  into the ledger. Records whose id already exists are discarded (existing
  data wins); a malformed file leaves the ledger untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file argument is required.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	candidates, err := pennybook.DecodeImport(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	result, err := store.Merge(candidates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transaction(s), skipped %d duplicate(s), %d total.\n",
		len(result.Imported), len(result.Duplicates), result.Total)
	for _, dup := range result.Duplicates {
		fmt.Printf("  duplicate: %s (%s)\n", dup.ID, dup.Description)
	}
	return subcommands.ExitSuccess
}
