/*
File Name:  Store.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Simple key-value store abstraction used for the trust database.
*/

package store

// Store is the interface for implementing the storage mechanism for remembered trust.
type Store interface {
	// Store stores the key/value pair.
	Store(key []byte, data []byte) error

	// Retrieve returns the value for the key if present.
	Retrieve(key []byte) (data []byte, found bool)

	// Delete deletes a key/value pair.
	Delete(key []byte)

	// Iterate calls the function for every stored key/value pair.
	Iterate(callback func(key []byte, value []byte))

	// Close releases the underlying resources.
	Close() error
}
