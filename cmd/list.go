package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/ewagner/pennybook"
)

type listCmd struct {
	sortColumn    string
	reverse       bool
	search        string
	caseSensitive bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the transaction list" }
func (*listCmd) Usage() string {
	return `pny list [-sort <column>] [-r] [-search <pattern>] [-case]

  Displays the ledger. Columns: description, amount, category, date.
  -search narrows the list with a regular expression matched against any
  field; an invalid pattern shows the unfiltered list with a warning.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sortColumn, "sort", "", "Sort column (description, amount, category, date)")
	f.BoolVar(&c.reverse, "r", false, "Sort descending instead of ascending")
	f.StringVar(&c.search, "search", "", "Filter with a regular expression")
	f.BoolVar(&c.caseSensitive, "case", false, "Make the search case sensitive")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if c.sortColumn != "" {
		store.SetSort(c.sortColumn)
		if c.reverse {
			store.SetSort(c.sortColumn)
		}
	}
	view := store.SortedView()

	searcher := pennybook.NewSearcher()
	searcher.SetCaseSensitive(c.caseSensitive)
	matcher, err := searcher.Compile(c.search)
	if err != nil {
		// Degrade to the unfiltered view, never fail the listing.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	view = pennybook.Filter(view, matcher)

	settings := store.Settings()
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tAMOUNT\tID")
	for _, t := range view {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Date, t.Description, t.Category,
			pennybook.FormatAmount(t.Amount, settings.BaseCurrency), t.ID)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
