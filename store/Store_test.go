/*
File Name:  Store_test.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package store

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T, s Store) {
	if _, found := s.Retrieve([]byte("key")); found {
		t.Fatalf("empty store returned a value")
	}

	if err := s.Store([]byte("key"), []byte("value")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	data, found := s.Retrieve([]byte("key"))
	if !found || string(data) != "value" {
		t.Fatalf("Retrieve = %q %v", data, found)
	}

	count := 0
	s.Iterate(func(key []byte, value []byte) {
		count++
		if string(key) != "key" || string(value) != "value" {
			t.Fatalf("Iterate saw %q=%q", key, value)
		}
	})
	if count != 1 {
		t.Fatalf("Iterate visited %d pairs, want 1", count)
	}

	s.Delete([]byte("key"))
	if _, found := s.Retrieve([]byte("key")); found {
		t.Fatalf("deleted key still present")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestPogrebStore(t *testing.T) {
	s, err := NewPogrebStore(filepath.Join(t.TempDir(), "trust.db"))
	if err != nil {
		t.Fatalf("NewPogrebStore: %v", err)
	}

	testStore(t, s)
}
