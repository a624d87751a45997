package pennybook

import "github.com/shopspring/decimal"

// d is a helper for tests to build decimal amounts from consts.
func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// txn is a helper for tests to build a transaction with the boring fields
// filled in.
func txn(id, description string, amount float64, category, day string) Transaction {
	return NewTransaction(id, description, d(amount), category, MustParseDate(day))
}
