/*
File Name:  Pogreb.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package store

import (
	"io"
	"log"
	"sync"

	"github.com/akrylysov/pogreb"
)

// PogrebStore is a key/value store using Pogreb.
type PogrebStore struct {
	mutex    *sync.Mutex
	filename string
	db       *pogreb.DB
}

// NewPogrebStore creates a properly initialized Pogreb store.
func NewPogrebStore(filename string) (store *PogrebStore, err error) {
	pogreb.SetLogger(log.New(io.Discard, "", 0))

	// if the database does not exist, it will be created
	db, err := pogreb.Open(filename, nil)
	if err != nil {
		return nil, err
	}

	return &PogrebStore{
		mutex:    &sync.Mutex{},
		filename: filename,
		db:       db,
	}, nil
}

// Store stores the key/value pair.
func (store *PogrebStore) Store(key []byte, data []byte) error {
	return store.db.Put(key, data)
}

// Retrieve returns the value for the key if present.
func (store *PogrebStore) Retrieve(key []byte) (data []byte, found bool) {
	value, err := store.db.Get(key)
	if err != nil || value == nil {
		return nil, false
	}
	return value, true
}

// Delete deletes a key/value pair.
func (store *PogrebStore) Delete(key []byte) {
	store.db.Delete(key)
}

// Iterate calls the function for every stored key/value pair.
func (store *PogrebStore) Iterate(callback func(key []byte, value []byte)) {
	it := store.db.Items()
	for {
		key, value, err := it.Next()
		if err != nil {
			return
		}
		callback(key, value)
	}
}

// Close releases the database.
func (store *PogrebStore) Close() error {
	return store.db.Close()
}
