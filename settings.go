package pennybook

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// defaultCategories is the ordered suggestion list offered to the user.
// It is not an enforced constraint on a transaction's category.
var defaultCategories = []string{"Food", "Books", "Transport", "Entertainment", "Fees", "Other"}

// Settings holds the per-user configuration that persists alongside the
// transaction list.
type Settings struct {
	// BaseCurrency is the currency all stored amounts are denominated in.
	BaseCurrency string `json:"baseCurrency"`
	// Currencies maps currency code to exchange rate relative to a
	// reference unit.
	Currencies map[string]decimal.Decimal `json:"currencies"`
	// ActiveCurrency is the display currency. If it is not a key of
	// Currencies, conversion degrades to a 1:1 rate.
	ActiveCurrency string `json:"activeCurrency"`
	// Categories is the ordered category suggestion list.
	Categories []string `json:"categories"`
	// BudgetCap is the spending threshold in ActiveCurrency terms.
	// Zero means no cap.
	BudgetCap decimal.Decimal `json:"budgetCap"`
}

// DefaultRates is the built-in exchange rate table.
func DefaultRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.NewFromFloat(0.92),
		"GBP": decimal.NewFromFloat(0.79),
	}
}

// DefaultSettings returns the settings used before any are saved.
func DefaultSettings() Settings {
	return Settings{
		BaseCurrency:   "USD",
		Currencies:     DefaultRates(),
		ActiveCurrency: "USD",
		Categories:     slices.Clone(defaultCategories),
		BudgetCap:      decimal.Zero,
	}
}

// resolveSettings layers stored overrides on top of the defaults, key by
// key, so a partially-populated saved blob never loses unspecified
// defaults. A nil stored value means "no saved settings".
func resolveSettings(stored *Settings) Settings {
	s := DefaultSettings()
	if stored == nil {
		return s
	}
	if stored.BaseCurrency != "" {
		s.BaseCurrency = stored.BaseCurrency
	}
	if stored.Currencies != nil {
		s.Currencies = maps.Clone(stored.Currencies)
	}
	if stored.ActiveCurrency != "" {
		s.ActiveCurrency = stored.ActiveCurrency
	}
	if stored.Categories != nil {
		s.Categories = slices.Clone(stored.Categories)
	}
	if !stored.BudgetCap.IsZero() {
		s.BudgetCap = stored.BudgetCap
	}
	return s
}

// clone returns a deep copy, so consumers never share the store's maps.
func (s Settings) clone() Settings {
	s.Currencies = maps.Clone(s.Currencies)
	s.Categories = slices.Clone(s.Categories)
	return s
}
