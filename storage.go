package pennybook

import (
	"encoding/json"
	"errors"
	"slices"
)

// ErrFailedToSave is returned (wrapped) by every Storage write that fails.
// The in-memory state has already changed by the time a write is attempted,
// so after this error memory and durable storage are inconsistent until the
// next successful write; callers decide whether to surface it and retry.
var ErrFailedToSave = errors.New("failed to save")

// Storage is the durable local key-value boundary: two independent slots,
// one for the transaction list and one for the settings.
//
// Reads never fail: missing, non-array, or unparsable content yields an
// empty list (transactions) or nil (settings).
type Storage interface {
	LoadTransactions() []Transaction
	SaveTransactions([]Transaction) error
	LoadSettings() *Settings
	SaveSettings(Settings) error
}

// MemoryStorage is an ephemeral Storage, used by tests and by runs that do
// not want a data file. Its zero value is ready to use.
type MemoryStorage struct {
	transactions []byte
	settings     []byte

	// FailWrites makes every save return ErrFailedToSave, simulating an
	// exhausted quota.
	FailWrites bool
}

func (m *MemoryStorage) LoadTransactions() []Transaction {
	if m.transactions == nil {
		return nil
	}
	var txs []Transaction
	if err := json.Unmarshal(m.transactions, &txs); err != nil {
		return nil
	}
	return txs
}

func (m *MemoryStorage) SaveTransactions(txs []Transaction) error {
	if m.FailWrites {
		return ErrFailedToSave
	}
	data, err := json.Marshal(txs)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	m.transactions = data
	return nil
}

func (m *MemoryStorage) LoadSettings() *Settings {
	if m.settings == nil {
		return nil
	}
	var s Settings
	if err := json.Unmarshal(m.settings, &s); err != nil {
		return nil
	}
	return &s
}

func (m *MemoryStorage) SaveSettings(s Settings) error {
	if m.FailWrites {
		return ErrFailedToSave
	}
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	m.settings = data
	return nil
}

var _ Storage = (*MemoryStorage)(nil)

// snapshotTransactions deep-copies a transaction list for handing out to
// consumers. Transaction values contain no shared references besides the
// decimal amount, which is immutable.
func snapshotTransactions(txs []Transaction) []Transaction {
	return slices.Clone(txs)
}
