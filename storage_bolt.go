package pennybook

import (
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/ewagner/pennybook/logger"
)

// Bucket and key names in the bbolt data file.
const (
	bucketState     = "state"
	keyTransactions = "transactions"
	keySettings     = "settings"
)

// BoltStorage persists the two state blobs in a bbolt file. Each slot is a
// key in a single bucket holding a JSON-serialized value.
type BoltStorage struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the data file and initializes its bucket.
func OpenBolt(path string) (*BoltStorage, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %q: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketState))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", bucketState, err)
	}
	return &BoltStorage{db: db}, nil
}

// Close closes the underlying data file.
func (s *BoltStorage) Close() error { return s.db.Close() }

func (s *BoltStorage) LoadTransactions() []Transaction {
	data := s.get(keyTransactions)
	if data == nil {
		return nil
	}
	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		logger.Log.Warnw("could not parse stored transactions, starting empty", "err", err)
		return nil
	}
	return txs
}

func (s *BoltStorage) SaveTransactions(txs []Transaction) error {
	if txs == nil {
		txs = []Transaction{}
	}
	return s.put(keyTransactions, txs)
}

func (s *BoltStorage) LoadSettings() *Settings {
	data := s.get(keySettings)
	if data == nil {
		return nil
	}
	var set Settings
	if err := json.Unmarshal(data, &set); err != nil {
		logger.Log.Warnw("could not parse stored settings, using defaults", "err", err)
		return nil
	}
	return &set
}

func (s *BoltStorage) SaveSettings(set Settings) error {
	return s.put(keySettings, set)
}

// get reads one slot. A read error degrades to "nothing saved".
func (s *BoltStorage) get(key string) []byte {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketState)).Get([]byte(key))
		if v != nil {
			// Copy the value, it is only valid during the transaction.
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		logger.Log.Warnw("could not read slot", "key", key, "err", err)
		return nil
	}
	return data
}

// put writes one slot, wrapping any failure in ErrFailedToSave.
func (s *BoltStorage) put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketState)).Put([]byte(key), data)
	})
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

var _ Storage = (*BoltStorage)(nil)
