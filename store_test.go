package pennybook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *MemoryStorage) {
	t.Helper()
	storage := &MemoryStorage{}
	store := NewStore(storage)
	store.Load()
	return store, storage
}

func TestStoreAddThenDelete(t *testing.T) {
	store, storage := newTestStore(t)

	tx, err := store.Add(txn("t1", "Coffee", 3.5, "Food", "2025-08-20"))
	require.NoError(t, err)
	assert.Equal(t, "t1", tx.ID)
	assert.Len(t, storage.LoadTransactions(), 1, "persisted list should hold the new transaction")

	require.NoError(t, store.Delete("t1"))
	assert.Empty(t, store.Transactions())
	assert.Empty(t, storage.LoadTransactions(), "persisted list should be empty after delete")
}

func TestStoreAddAssignsID(t *testing.T) {
	store, _ := newTestStore(t)

	tx, err := store.Add(txn("", "Bus ticket", 2, "Transport", "2025-08-20"))
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
}

func TestStoreUpdate(t *testing.T) {
	store, storage := newTestStore(t)
	_, err := store.Add(txn("t1", "Lunch", 12, "Food", "2025-08-20"))
	require.NoError(t, err)

	before := store.Transactions()[0].UpdatedAt
	time.Sleep(5 * time.Millisecond)

	amount := d(14.5)
	require.NoError(t, store.Update("t1", Patch{Amount: &amount}))

	got := store.Transactions()[0]
	assert.True(t, got.Amount.Equal(d(14.5)))
	assert.Equal(t, "Lunch", got.Description, "unpatched fields keep their value")
	assert.True(t, got.UpdatedAt.After(before), "UpdatedAt must be refreshed")
	assert.Len(t, storage.LoadTransactions(), 1)
}

func TestStoreUpdateUnknownIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Add(txn("t1", "Lunch", 12, "Food", "2025-08-20"))
	require.NoError(t, err)

	notified := 0
	defer store.Subscribe(func() { notified++ })()

	amount := d(99)
	require.NoError(t, store.Update("missing", Patch{Amount: &amount}))
	assert.Zero(t, notified, "a no-op update must not broadcast")
	assert.True(t, store.Transactions()[0].Amount.Equal(d(12)))
}

func TestStoreSortCycle(t *testing.T) {
	store, _ := newTestStore(t)

	store.SetSort(ColAmount)
	assert.Equal(t, SortState{Column: ColAmount, Direction: SortAscending}, store.SortState())
	store.SetSort(ColAmount)
	assert.Equal(t, SortDescending, store.SortState().Direction)
	store.SetSort(ColAmount)
	assert.Equal(t, SortNone, store.SortState().Direction)
	store.SetSort(ColAmount)
	assert.Equal(t, SortAscending, store.SortState().Direction, "the cycle wraps around")

	// A different column always starts at ascending, whatever came before.
	store.SetSort(ColAmount)
	store.SetSort(ColDate)
	assert.Equal(t, SortState{Column: ColDate, Direction: SortAscending}, store.SortState())
}

func TestStoreSortedView(t *testing.T) {
	store, _ := newTestStore(t)
	for _, tx := range []Transaction{
		txn("t1", "cinema", 15, "Entertainment", "2025-08-22"),
		txn("t2", "apples", 4, "Food", "2025-08-20"),
		txn("t3", "bus", 4, "Transport", "2025-08-21"),
	} {
		_, err := store.Add(tx)
		require.NoError(t, err)
	}

	ids := func(txs []Transaction) []string {
		out := make([]string, len(txs))
		for i, t := range txs {
			out[i] = t.ID
		}
		return out
	}

	// No sort: insertion order.
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(store.SortedView()))

	// Amount ascending is stable: t2 and t3 tie and keep insertion order.
	store.SetSort(ColAmount)
	assert.Equal(t, []string{"t2", "t3", "t1"}, ids(store.SortedView()))

	// Descending reverses the comparator, not the tie-break order.
	store.SetSort(ColAmount)
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(store.SortedView()))

	// Third call goes back to none, insertion order again.
	store.SetSort(ColAmount)
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(store.SortedView()))

	store.SetSort(ColDate)
	assert.Equal(t, []string{"t2", "t3", "t1"}, ids(store.SortedView()))

	store.SetSort(ColDescription)
	assert.Equal(t, []string{"t2", "t3", "t1"}, ids(store.SortedView()))

	// The view is a copy: mutating it must not touch the store.
	view := store.SortedView()
	view[0].Description = "tampered"
	assert.NotEqual(t, "tampered", store.Transactions()[0].Description)
}

func TestStoreSubscribersFireInOrder(t *testing.T) {
	store, _ := newTestStore(t)

	var order []string
	unsubA := store.Subscribe(func() { order = append(order, "a") })
	defer store.Subscribe(func() { order = append(order, "b") })()

	_, err := store.Add(txn("t1", "Coffee", 3, "Food", "2025-08-20"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, order, "one broadcast per mutation, registration order")

	order = nil
	unsubA()
	store.SetSort(ColDate)
	assert.Equal(t, []string{"b"}, order, "unsubscribed callbacks stop firing")
}

func TestStorePersistenceFailure(t *testing.T) {
	store, storage := newTestStore(t)
	storage.FailWrites = true

	notified := 0
	defer store.Subscribe(func() { notified++ })()

	_, err := store.Add(txn("t1", "Coffee", 3, "Food", "2025-08-20"))
	require.ErrorIs(t, err, ErrFailedToSave)

	// Memory is ahead of the durable copy, the accepted limitation.
	assert.Len(t, store.Transactions(), 1)
	assert.Empty(t, storage.LoadTransactions())
	assert.Zero(t, notified, "a failed persist must not broadcast")

	// The next successful write reconciles.
	storage.FailWrites = false
	_, err = store.Add(txn("t2", "Tea", 2, "Food", "2025-08-20"))
	require.NoError(t, err)
	assert.Len(t, storage.LoadTransactions(), 2)
}

func TestStoreSettingsMutators(t *testing.T) {
	store, storage := newTestStore(t)

	require.NoError(t, store.SetActiveCurrency("EUR"))
	require.NoError(t, store.UpdateCurrencyRates(map[string]decimal.Decimal{"CHF": d(0.89)}))
	require.NoError(t, store.SetBudgetCap(d(500)))

	saved := storage.LoadSettings()
	require.NotNil(t, saved)
	assert.Equal(t, "EUR", saved.ActiveCurrency)
	assert.True(t, saved.Currencies["CHF"].Equal(d(0.89)))
	assert.True(t, saved.Currencies["USD"].Equal(d(1)), "merging rates keeps existing keys")
	assert.True(t, saved.BudgetCap.Equal(d(500)))
}

func TestStoreSetBudgetCapCoercesNegative(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetBudgetCap(d(-10)))
	assert.True(t, store.Settings().BudgetCap.IsZero())
}

func TestStoreClear(t *testing.T) {
	store, storage := newTestStore(t)
	_, err := store.Add(txn("t1", "Coffee", 3, "Food", "2025-08-20"))
	require.NoError(t, err)
	require.NoError(t, store.SetBudgetCap(d(100)))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Transactions())
	assert.Empty(t, storage.LoadTransactions())
	assert.True(t, store.Settings().BudgetCap.Equal(d(100)), "settings survive a clear")
}

func TestStoreLoadDegradesOnGarbage(t *testing.T) {
	storage := &MemoryStorage{
		transactions: []byte(`{"not":"an array"}`),
		settings:     []byte(`garbage`),
	}
	store := NewStore(storage)
	store.Load()

	assert.Empty(t, store.Transactions())
	assert.Equal(t, DefaultSettings().BaseCurrency, store.Settings().BaseCurrency)
}
