package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// rateFlags collects repeated -rate CODE=VALUE flags.
type rateFlags map[string]decimal.Decimal

func (r rateFlags) String() string { return fmt.Sprintf("%v", map[string]decimal.Decimal(r)) }

func (r rateFlags) Set(s string) error {
	code, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("want CODE=VALUE, got %q", s)
	}
	rate, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", value, err)
	}
	r[strings.ToUpper(strings.TrimSpace(code))] = rate
	return nil
}

type currencyCmd struct {
	active string
	rates  rateFlags
}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or change currency settings" }
func (*currencyCmd) Usage() string {
	return `pny currency [-active <code>] [-rate CODE=VALUE]...

  With no flags, prints the active currency and the rate table. -active
  switches the display currency; -rate updates rates key by key.
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {
	c.rates = make(rateFlags)
	f.StringVar(&c.active, "active", "", "Display currency code")
	f.Var(c.rates, "rate", "Exchange rate as CODE=VALUE (repeatable)")
}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if len(c.rates) > 0 {
		if err := store.UpdateCurrencyRates(c.rates); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.active != "" {
		if err := store.SetActiveCurrency(strings.ToUpper(c.active)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	settings := store.Settings()
	fmt.Printf("Base currency:   %s\n", settings.BaseCurrency)
	fmt.Printf("Active currency: %s\n", settings.ActiveCurrency)
	codes := make([]string, 0, len(settings.Currencies))
	for code := range settings.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Printf("  %s: %s\n", code, settings.Currencies[code])
	}
	return subcommands.ExitSuccess
}
