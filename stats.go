package pennybook

import (
	"math"

	"github.com/shopspring/decimal"
)

// This file holds the pure aggregation functions over a transaction list.
// None of them mutate their input or keep hidden state.

// DayTotal is one bucket of the last-7-days aggregation.
type DayTotal struct {
	Date  Date            `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// BudgetState classifies current spend against the budget cap.
type BudgetState string

const (
	BudgetNone  BudgetState = "none"
	BudgetUnder BudgetState = "under"
	BudgetNear  BudgetState = "near"
	BudgetOver  BudgetState = "over"
)

// BudgetReport is the result of BudgetStatus.
type BudgetReport struct {
	Status  BudgetState
	Percent int
}

// Total sums the amounts of the list.
func Total(transactions []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// Last7Days buckets the list's amounts by the 7 calendar days ending today,
// inclusive, in chronological order. Transactions outside the window are
// ignored. It always returns exactly 7 buckets, even for an empty list.
func Last7Days(transactions []Transaction) []DayTotal {
	return lastNDays(transactions, Today(), 7)
}

func lastNDays(transactions []Transaction, today Date, n int) []DayTotal {
	days := make([]DayTotal, n)
	index := make(map[Date]int, n)
	for i := range days {
		day := today.Add(i - (n - 1))
		days[i] = DayTotal{Date: day, Total: decimal.Zero}
		index[day] = i
	}
	for _, t := range transactions {
		if i, ok := index[t.Date]; ok {
			days[i].Total = days[i].Total.Add(t.Amount)
		}
	}
	return days
}

// TopCategory returns the category with the strictly highest occurrence
// count and its share of the list, rounded to a whole percent. On equal
// counts the first-encountered category keeps the lead. An empty list
// yields ("", 0).
func TopCategory(transactions []Transaction) (category string, percentage int) {
	counts := make(map[string]int)
	var order []string
	for _, t := range transactions {
		if _, seen := counts[t.Category]; !seen {
			order = append(order, t.Category)
		}
		counts[t.Category]++
	}

	max := 0
	for _, cat := range order {
		if counts[cat] > max {
			max = counts[cat]
			category = cat
		}
	}
	if max == 0 {
		return "", 0
	}

	total := len(transactions)
	if total < 1 {
		total = 1
	}
	return category, int(math.Round(float64(max) / float64(total) * 100))
}

// BudgetStatus classifies totalSpent against the cap. A cap of zero or less
// means no budget tracking is active. Percent saturates at 100; the
// boundaries are inclusive: exactly 100 is over, exactly 80 is near.
func BudgetStatus(totalSpent, cap decimal.Decimal) BudgetReport {
	if cap.LessThanOrEqual(decimal.Zero) {
		return BudgetReport{Status: BudgetNone, Percent: 0}
	}
	percent := int(totalSpent.Div(cap).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	if percent > 100 {
		percent = 100
	}
	status := BudgetUnder
	switch {
	case percent >= 100:
		status = BudgetOver
	case percent >= 80:
		status = BudgetNear
	}
	return BudgetReport{Status: status, Percent: percent}
}
