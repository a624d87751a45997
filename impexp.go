package pennybook

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ewagner/pennybook/logger"
)

// This file handles the import/export formats: a JSON array of transaction
// objects for both directions, and CSV for export. The JSON import is
// validated as a whole before any merge, so a bad file never partially
// updates the store.

// importDateRE checks the date field of imported records. It is
// deliberately unanchored, a substring match, matching the historical
// import behavior: "9999-2024-01-01" passes.
var importDateRE = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ImportResult reports the outcome of a merge.
type ImportResult struct {
	// Imported are the novel-id records that were appended.
	Imported []Transaction
	// Duplicates are the candidate records whose id already existed; they
	// were discarded and the existing data kept.
	Duplicates []Transaction
	// Total is the size of the store after the merge.
	Total int
}

// importRecord mirrors one element of the import array with optional
// fields, so missing or mistyped fields can be reported per record.
type importRecord struct {
	ID          *string      `json:"id"`
	Description *string      `json:"description"`
	Amount      *json.Number `json:"amount"`
	Category    *string      `json:"category"`
	Date        *string      `json:"date"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// DecodeImport reads and validates an externally supplied transaction list.
// The top-level value must be an array; every element must have id,
// description and category as strings, amount as a finite number, and a
// date containing a YYYY-MM-DD digit run. Any violation rejects the whole
// import with a structural error.
func DecodeImport(r io.Reader) ([]Transaction, error) {
	dec := json.NewDecoder(r)
	var records []importRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("invalid import: expected an array of transaction objects: %w", err)
	}

	txs := make([]Transaction, 0, len(records))
	for i, rec := range records {
		switch {
		case rec.ID == nil:
			return nil, fmt.Errorf("invalid import: record %d: missing id", i)
		case rec.Description == nil:
			return nil, fmt.Errorf("invalid import: record %d: missing description", i)
		case rec.Amount == nil:
			return nil, fmt.Errorf("invalid import: record %d: missing amount", i)
		case rec.Category == nil:
			return nil, fmt.Errorf("invalid import: record %d: missing category", i)
		case rec.Date == nil:
			return nil, fmt.Errorf("invalid import: record %d: missing date", i)
		case !importDateRE.MatchString(*rec.Date):
			return nil, fmt.Errorf("invalid import: record %d: date %q does not contain a YYYY-MM-DD date", i, *rec.Date)
		}
		amount, err := decimal.NewFromString(rec.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("invalid import: record %d: bad amount %q: %w", i, rec.Amount.String(), err)
		}
		day, err := ParseDate(importDateRE.FindString(*rec.Date))
		if err != nil {
			return nil, fmt.Errorf("invalid import: record %d: %w", i, err)
		}
		txs = append(txs, Transaction{
			ID:          *rec.ID,
			Description: *rec.Description,
			Amount:      amount,
			Category:    *rec.Category,
			Date:        day,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})
	}
	return txs, nil
}

// Merge merges validated candidates into the store, deduplicating by id.
// Records whose id already exists are discarded, existing data always wins.
// Novel records are appended after the existing list in their original
// relative order, and the complete merged list is persisted in one write.
func (s *Store) Merge(candidates []Transaction) (ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{}, len(s.transactions))
	for _, tx := range s.transactions {
		existing[tx.ID] = struct{}{}
	}

	var result ImportResult
	now := time.Now()
	for _, tx := range candidates {
		if _, dup := existing[tx.ID]; dup {
			result.Duplicates = append(result.Duplicates, tx)
			continue
		}
		existing[tx.ID] = struct{}{}
		if tx.CreatedAt.IsZero() {
			tx.CreatedAt = now
		}
		if tx.UpdatedAt.IsZero() {
			tx.UpdatedAt = tx.CreatedAt
		}
		result.Imported = append(result.Imported, tx)
	}

	s.transactions = append(s.transactions, result.Imported...)
	result.Total = len(s.transactions)
	logger.Log.Infow("import merged",
		"imported", len(result.Imported),
		"duplicates", len(result.Duplicates),
		"total", result.Total)
	return result, s.persistTransactions()
}

// ExportJSON writes the full transaction list, pretty-printed, as a
// standalone document.
func ExportJSON(w io.Writer, transactions []Transaction) error {
	if transactions == nil {
		transactions = []Transaction{}
	}
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal transactions: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write JSON export: %w", err)
	}
	return nil
}

// ExportCSV writes one row per transaction in the given order, after a
// fixed header. Fields containing a comma, double quote, or newline are
// quoted with internal quotes doubled; other fields are emitted raw.
func ExportCSV(w io.Writer, transactions []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Description", "Amount", "Category", "Date"}); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, t := range transactions {
		row := []string{t.ID, t.Description, t.Amount.String(), t.Category, t.Date.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row for %q: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
