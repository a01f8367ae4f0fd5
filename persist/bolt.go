package persist

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketPreferences = "preferences"

// Bolt is a Store backed by a bbolt database file, for preferences that must
// survive process restarts.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens (or creates) the database at path and initializes the
// preferences bucket.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPreferences))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize preference store: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Get returns the value stored under key, or ErrNoKey.
func (b *Bolt) Get(key string) (string, error) {
	var value string
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketPreferences)).Get([]byte(key))
		if v == nil {
			return ErrNoKey
		}
		value = string(v)
		return nil
	})
	return value, err
}

// Set stores value under key.
func (b *Bolt) Set(key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPreferences)).Put([]byte(key), []byte(value))
	})
}

// Delete removes key from the store.
func (b *Bolt) Delete(key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPreferences)).Delete([]byte(key))
	})
}

// Close closes the underlying database.
func (b *Bolt) Close() error {
	return b.db.Close()
}
