package pennybook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	assert.True(t, Total(nil).IsZero())

	list := []Transaction{
		txn("t1", "Coffee", 3.5, "Food", "2025-08-20"),
		txn("t2", "Book", 12.99, "Books", "2025-08-21"),
	}
	assert.True(t, Total(list).Equal(d(16.49)))
}

func TestLastNDays(t *testing.T) {
	today := MustParseDate("2025-08-22")

	list := []Transaction{
		txn("t1", "Coffee", 3, "Food", "2025-08-22"),
		txn("t2", "Lunch", 10, "Food", "2025-08-22"),
		txn("t3", "Bus", 2, "Transport", "2025-08-16"),
		txn("t4", "Old", 99, "Other", "2025-08-15"), // outside the window
	}
	days := lastNDays(list, today, 7)

	assert.Len(t, days, 7)
	assert.Equal(t, MustParseDate("2025-08-16"), days[0].Date)
	assert.Equal(t, today, days[6].Date)
	assert.True(t, days[0].Total.Equal(d(2)))
	assert.True(t, days[6].Total.Equal(d(13)), "same-day amounts accumulate")
	for _, day := range days[1:6] {
		assert.True(t, day.Total.IsZero(), "day %s should be empty", day.Date)
	}
}

func TestLastNDaysEmptyList(t *testing.T) {
	days := lastNDays(nil, MustParseDate("2025-03-03"), 7)
	assert.Len(t, days, 7, "the window always has a bucket per day")
	for _, day := range days {
		assert.True(t, day.Total.IsZero())
	}
	// The window spans a month boundary without gaps.
	assert.Equal(t, MustParseDate("2025-02-25"), days[0].Date)
}

func TestTopCategory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		cat, pct := TopCategory(nil)
		assert.Empty(t, cat)
		assert.Zero(t, pct)
	})

	t.Run("majority", func(t *testing.T) {
		list := []Transaction{
			txn("t1", "a", 1, "Food", "2025-08-20"),
			txn("t2", "b", 1, "Food", "2025-08-20"),
			txn("t3", "c", 1, "Books", "2025-08-20"),
		}
		cat, pct := TopCategory(list)
		assert.Equal(t, "Food", cat)
		assert.Equal(t, 67, pct)
	})

	t.Run("tie keeps first seen", func(t *testing.T) {
		list := []Transaction{
			txn("t1", "a", 1, "Transport", "2025-08-20"),
			txn("t2", "b", 1, "Food", "2025-08-20"),
			txn("t3", "c", 1, "Food", "2025-08-20"),
			txn("t4", "d", 1, "Transport", "2025-08-20"),
		}
		cat, pct := TopCategory(list)
		assert.Equal(t, "Transport", cat)
		assert.Equal(t, 50, pct)
	})
}

func TestBudgetStatus(t *testing.T) {
	tests := []struct {
		name       string
		spent, cap float64
		status     BudgetState
		percent    int
	}{
		{"no cap", 50, 0, BudgetNone, 0},
		{"negative cap", 50, -10, BudgetNone, 0},
		{"well under", 10, 100, BudgetUnder, 10},
		{"just under near", 79, 100, BudgetUnder, 79},
		{"exactly near", 80, 100, BudgetNear, 80},
		{"near band top", 99, 100, BudgetNear, 99},
		{"exactly over", 100, 100, BudgetOver, 100},
		{"past the cap saturates", 150, 100, BudgetOver, 100},
		{"fractional cap rounds", 1, 3, BudgetUnder, 33},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BudgetStatus(d(tc.spent), d(tc.cap))
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.percent, got.Percent)
		})
	}
}
