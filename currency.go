package pennybook

import (
	"maps"

	"github.com/shopspring/decimal"
)

// Converter holds a mutable table of exchange rates relative to a fixed
// reference unit and converts amounts between currency codes.
type Converter struct {
	rates map[string]decimal.Decimal
}

// NewConverter returns a converter loaded with the built-in rate table.
func NewConverter() *Converter {
	return &Converter{rates: DefaultRates()}
}

// SetRates replaces the rate table wholesale.
func (c *Converter) SetRates(rates map[string]decimal.Decimal) {
	c.rates = maps.Clone(rates)
	if c.rates == nil {
		c.rates = make(map[string]decimal.Decimal)
	}
}

// UpdateRates merges the partial table into the current one, key by key.
func (c *Converter) UpdateRates(partial map[string]decimal.Decimal) {
	for code, rate := range partial {
		c.rates[code] = rate
	}
}

// Rates returns a copy of the current rate table.
func (c *Converter) Rates() map[string]decimal.Decimal {
	return maps.Clone(c.rates)
}

// Convert converts an amount between two currency codes, as
// amount / rate[from] * rate[to]. An unknown or zero rate counts as 1, so
// conversion to or from an unregistered currency degrades to a no-op on
// that side.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	return amount.Div(c.rate(from)).Mul(c.rate(to))
}

func (c *Converter) rate(code string) decimal.Decimal {
	r, ok := c.rates[code]
	if !ok || r.IsZero() {
		return decimal.NewFromInt(1)
	}
	return r
}

// Format renders the amount in the given currency for display. See
// FormatAmount; this never fails, unknown codes get a raw-code fallback.
func (c *Converter) Format(amount decimal.Decimal, code string) string {
	return FormatAmount(amount, code)
}
