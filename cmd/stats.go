package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/ewagner/pennybook"
	"github.com/ewagner/pennybook/renderer"
)

type statsCmd struct {
	plain bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display spending statistics" }
func (*statsCmd) Usage() string {
	return `pny stats [-plain]

  Shows the total spent, the last 7 days, the top category, and the budget
  status, all converted to the active currency.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown without terminal styling")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	md := renderer.StatsMarkdown(buildStats(store))
	if c.plain {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// buildStats aggregates the ledger and converts every figure from the base
// currency to the active one for display.
func buildStats(store *pennybook.Store) *renderer.Stats {
	transactions := store.Transactions()
	settings := store.Settings()

	converter := pennybook.NewConverter()
	converter.SetRates(settings.Currencies)
	base, active := settings.BaseCurrency, settings.ActiveCurrency
	display := func(v decimal.Decimal) string {
		return converter.Format(converter.Convert(v, base, active), active)
	}

	report := &renderer.Stats{
		Currency: active,
		Total:    display(pennybook.Total(transactions)),
	}

	days := pennybook.Last7Days(transactions)
	maxTotal := 0.0
	for _, d := range days {
		if v := d.Total.InexactFloat64(); v > maxTotal {
			maxTotal = v
		}
	}
	for _, d := range days {
		report.Days = append(report.Days, renderer.DayRow{
			Date:  d.Date.String(),
			Total: display(d.Total),
			Bar:   renderer.Bar(d.Total.InexactFloat64(), maxTotal, 10),
		})
	}

	report.TopCategory, report.TopShare = pennybook.TopCategory(transactions)

	spent := converter.Convert(pennybook.Total(transactions), base, active)
	budget := pennybook.BudgetStatus(spent, settings.BudgetCap)
	if budget.Status != pennybook.BudgetNone {
		report.Budget = renderer.BudgetRow{
			Status:  string(budget.Status),
			Percent: budget.Percent,
			Cap:     converter.Format(settings.BudgetCap, active),
		}
	}
	return report
}
