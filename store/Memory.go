/*
File Name:  Memory.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package store

import (
	"sync"
)

// MemoryStore is a simple in-memory key/value store. It is the fallback when
// no database folder is configured and is also used for testing.
type MemoryStore struct {
	mutex *sync.Mutex
	data  map[string][]byte
}

// NewMemoryStore creates a properly initialized memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mutex: &sync.Mutex{},
		data:  make(map[string][]byte),
	}
}

// Store stores the key/value pair.
func (ms *MemoryStore) Store(key []byte, data []byte) error {
	ms.mutex.Lock()
	ms.data[string(key)] = data
	ms.mutex.Unlock()
	return nil
}

// Retrieve returns the value for the key if present.
func (ms *MemoryStore) Retrieve(key []byte) (data []byte, found bool) {
	ms.mutex.Lock()
	data, found = ms.data[string(key)]
	ms.mutex.Unlock()
	return data, found
}

// Delete deletes a key/value pair.
func (ms *MemoryStore) Delete(key []byte) {
	ms.mutex.Lock()
	delete(ms.data, string(key))
	ms.mutex.Unlock()
}

// Iterate calls the function for every stored key/value pair.
func (ms *MemoryStore) Iterate(callback func(key []byte, value []byte)) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	for key, value := range ms.data {
		callback([]byte(key), value)
	}
}

// Close releases the store. No-op for the memory store.
func (ms *MemoryStore) Close() error {
	return nil
}
