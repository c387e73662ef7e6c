package storage

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/boltdb/bolt"
)

var boltBucket = []byte("swipehire")

// Bolt is a Store backed by a single-file embedded Bolt database. It is the
// default local persistence: one file per browser-profile equivalent.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: opening bolt db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: creating bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string, dest any) bool {
	var raw []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(boltBucket).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		log.Printf("storage: bolt read %q: %v", key, err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("storage: corrupt entry at %q: %v", key, err)
		return false
	}
	return true
}

func (b *Bolt) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: marshaling %q: %v", key, err)
		return
	}
	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), raw)
	})
	if err != nil {
		log.Printf("storage: bolt write %q: %v", key, err)
	}
}

func (b *Bolt) Remove(key string) {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		log.Printf("storage: bolt delete %q: %v", key, err)
	}
}

// Close closes the underlying database file.
func (b *Bolt) Close() error {
	return b.db.Close()
}
