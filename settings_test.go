package pennybook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveSettings(t *testing.T) {
	t.Run("nil stored yields defaults", func(t *testing.T) {
		s := resolveSettings(nil)
		assert.Equal(t, "USD", s.BaseCurrency)
		assert.Equal(t, "USD", s.ActiveCurrency)
		assert.Equal(t, defaultCategories, s.Categories)
		assert.True(t, s.BudgetCap.IsZero())
		assert.True(t, s.Currencies["EUR"].Equal(d(0.92)))
	})

	t.Run("partial stored keeps unspecified defaults", func(t *testing.T) {
		s := resolveSettings(&Settings{ActiveCurrency: "EUR"})
		assert.Equal(t, "EUR", s.ActiveCurrency)
		assert.Equal(t, "USD", s.BaseCurrency, "unset keys fall back")
		assert.Equal(t, defaultCategories, s.Categories)
	})

	t.Run("stored values win per key", func(t *testing.T) {
		stored := &Settings{
			BaseCurrency: "GBP",
			Currencies:   map[string]decimal.Decimal{"GBP": d(1)},
			Categories:   []string{"Everything"},
			BudgetCap:    d(250),
		}
		s := resolveSettings(stored)
		assert.Equal(t, "GBP", s.BaseCurrency)
		assert.Equal(t, []string{"Everything"}, s.Categories)
		assert.True(t, s.BudgetCap.Equal(d(250)))
		_, hasUSD := s.Currencies["USD"]
		assert.False(t, hasUSD, "a stored rate table replaces the default wholesale")
	})
}

func TestSettingsCloneIsDeep(t *testing.T) {
	s := DefaultSettings()
	c := s.clone()
	c.Currencies["USD"] = d(99)
	c.Categories[0] = "tampered"
	assert.True(t, s.Currencies["USD"].Equal(d(1)))
	assert.Equal(t, "Food", s.Categories[0])
}
