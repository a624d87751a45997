package pennybook

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ewagner/pennybook/logger"
)

// Sortable columns of the transaction list.
const (
	ColDescription = "description"
	ColAmount      = "amount"
	ColCategory    = "category"
	ColDate        = "date"
)

// SortDirection is the three-state direction of a column sort.
type SortDirection string

const (
	SortNone       SortDirection = "none"
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// next advances the cyclic order none -> ascending -> descending -> none.
func (d SortDirection) next() SortDirection {
	switch d {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// SortState is the active sort of the derived view. It lives only in the
// running session and is never persisted.
type SortState struct {
	Column    string
	Direction SortDirection
}

// Store owns the canonical transaction list and the user settings. Every
// mutating operation runs the sequence mutate, persist, notify before
// returning; a persistence failure propagates to the caller with the
// in-memory state already changed (see ErrFailedToSave).
//
// A single mutex guards the whole sequence so that two interleaved
// mutations cannot produce a lost update on the durable copy. Subscriber
// callbacks run synchronously under that mutex and must not call back into
// the store.
type Store struct {
	mu       sync.Mutex
	storage  Storage
	collator *collate.Collator

	transactions []Transaction
	settings     Settings
	sortState    SortState

	nextSubID   int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func()
}

// NewStore creates an empty store on top of the given storage. It holds no
// data until Load is called.
func NewStore(storage Storage) *Store {
	return &Store{
		storage:   storage,
		collator:  collate.New(language.Und),
		settings:  DefaultSettings(),
		sortState: SortState{Direction: SortNone},
	}
}

// Load populates the store from storage. Missing or unreadable content
// degrades to an empty list and default settings. Subscribers are notified
// once.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = s.storage.LoadTransactions()
	s.settings = resolveSettings(s.storage.LoadSettings())
	logger.Log.Debugw("store loaded", "transactions", len(s.transactions))
	s.notify()
}

// Subscribe registers fn to be invoked, synchronously and without payload,
// once per state-changing operation. Subscribers fire in registration
// order. The returned function unregisters fn.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	for _, sub := range s.subscribers {
		sub.fn()
	}
}

// persistTransactions writes the list and broadcasts on success. On failure
// the error is returned and no broadcast happens, leaving memory ahead of
// the durable copy.
func (s *Store) persistTransactions() error {
	if err := s.storage.SaveTransactions(s.transactions); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Store) persistSettings() error {
	if err := s.storage.SaveSettings(s.settings); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Add appends a transaction, persists the full list, and notifies. It does
// not check id uniqueness; callers own that guarantee. An empty id is
// replaced by a fresh one.
func (s *Store) Add(tx Transaction) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	now := time.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	if tx.UpdatedAt.IsZero() {
		tx.UpdatedAt = tx.CreatedAt
	}
	s.transactions = append(s.transactions, tx)
	logger.Log.Debugw("add transaction", "id", tx.ID, "amount", tx.Amount)
	return tx, s.persistTransactions()
}

// Update merges the patch into the transaction with the given id and
// refreshes its UpdatedAt. An unknown id is a no-op: nothing is persisted
// and nobody is notified.
func (s *Store) Update(id string, p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions[i] = p.apply(s.transactions[i], time.Now())
			logger.Log.Debugw("update transaction", "id", id)
			return s.persistTransactions()
		}
	}
	return nil
}

// Delete removes the matching transaction if any, then persists and
// notifies regardless.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	logger.Log.Debugw("delete transaction", "id", id)
	return s.persistTransactions()
}

// Clear wipes the whole transaction list, persists the empty list, and
// notifies. Settings are untouched.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = nil
	logger.Log.Infow("clear all transactions")
	return s.persistTransactions()
}

// SetSort applies the three-state cycle for the column: a column different
// from the current one resets to ascending; re-selecting the same column
// advances none -> ascending -> descending -> none. The change is
// view-affecting state, so subscribers are notified, but nothing persists.
func (s *Store) SetSort(column string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sortState.Column != column {
		s.sortState = SortState{Column: column, Direction: SortAscending}
	} else {
		s.sortState.Direction = s.sortState.Direction.next()
	}
	s.notify()
}

// SortState returns the current sort column and direction.
func (s *Store) SortState() SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortState
}

// Transactions returns a fresh copy of the list in insertion order.
func (s *Store) Transactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotTransactions(s.transactions)
}

// SortedView returns a new ordered copy of the transaction list under the
// active sort. With no column or direction none it is the insertion order.
// The sort is stable: equal keys keep their insertion order. Amounts
// compare numerically, dates as ISO-8601 strings, every other column with
// the locale collator.
func (s *Store) SortedView() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := snapshotTransactions(s.transactions)
	column, direction := s.sortState.Column, s.sortState.Direction
	if column == "" || direction == SortNone {
		return view
	}
	dir := 1
	if direction == SortDescending {
		dir = -1
	}
	sort.SliceStable(view, func(i, j int) bool {
		return dir*s.compare(view[i], view[j], column) < 0
	})
	return view
}

func (s *Store) compare(a, b Transaction, column string) int {
	switch column {
	case ColAmount:
		return a.Amount.Cmp(b.Amount)
	case ColDate:
		// Lexicographic order is valid because the format is the
		// fixed-width YYYY-MM-DD.
		return strings.Compare(a.Date.String(), b.Date.String())
	default:
		return s.collator.CompareString(cell(a, column), cell(b, column))
	}
}

// cell renders the string value of a column. Unknown columns compare as
// equal, which keeps the view in insertion order.
func cell(t Transaction, column string) string {
	switch column {
	case ColDescription:
		return t.Description
	case ColCategory:
		return t.Category
	default:
		return ""
	}
}

// SetActiveCurrency changes the display currency, persists settings, and
// notifies. The code is not required to exist in the rate table; conversion
// degrades to 1:1 for unknown codes.
func (s *Store) SetActiveCurrency(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ActiveCurrency = code
	return s.persistSettings()
}

// UpdateCurrencyRates merges the partial rate table into the settings,
// persists, and notifies.
func (s *Store) UpdateCurrencyRates(partial map[string]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Currencies == nil {
		s.settings.Currencies = make(map[string]decimal.Decimal)
	}
	for code, rate := range partial {
		s.settings.Currencies[code] = rate
	}
	return s.persistSettings()
}

// SetBudgetCap sets the spending threshold, persists settings, and
// notifies. Negative input is coerced to zero, meaning "no cap".
func (s *Store) SetBudgetCap(cap decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cap.IsNegative() {
		cap = decimal.Zero
	}
	s.settings.BudgetCap = cap
	return s.persistSettings()
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.clone()
}
