package pennybook

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatAmount renders an amount as a human-readable currency string using
// the display rules of the given currency code (symbol, grouping, fraction
// digits). Codes unknown to the currency registry fall back to a fixed
// two-decimal rendering prefixed by the raw code, so this never fails.
func FormatAmount(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%s %s", code, amount.StringFixed(2))
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// ParseAmount parses an amount from its textual form and checks the boundary
// rules: a non-negative decimal number with at most two fractional digits.
func ParseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	if v.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("invalid amount %q: at most two fractional digits", s)
	}
	return v, nil
}
