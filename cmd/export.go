package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/ewagner/pennybook"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as JSON or CSV" }
func (*exportCmd) Usage() string {
	return `pny export [-format json|csv] [-o <file>]

  Writes the full transaction list in store order, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Export format: json or csv")
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	transactions := store.Transactions()
	switch c.format {
	case "json":
		err = pennybook.ExportJSON(w, transactions)
	case "csv":
		err = pennybook.ExportCSV(w, transactions)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want json or csv.\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
