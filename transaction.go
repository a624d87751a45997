package pennybook

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one recorded monetary event. Amounts are non-negative
// decimals denominated in the settings' base currency; the two-fractional
// digit rule is enforced at the boundary (form validation, import), not by
// the store on mutation.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewTransaction creates a transaction stamped with the current time.
// The id may be left empty, in which case the store assigns one on Add.
func NewTransaction(id, description string, amount decimal.Decimal, category string, day Date) Transaction {
	now := time.Now()
	return Transaction{
		ID:          id,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        day,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Date == o.Date
}

// Patch lists exactly the fields that may be modified on an existing
// transaction. A nil field means "leave unchanged".
type Patch struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Date        *Date
}

// apply returns a new record with the patched fields merged over t.
// UpdatedAt is always refreshed, even for an empty patch.
func (p Patch) apply(t Transaction, now time.Time) Transaction {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	t.UpdatedAt = now
	return t
}
