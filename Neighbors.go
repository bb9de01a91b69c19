/*
File Name:  Neighbors.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

The neighbor table stores every node currently considered in the vicinity.
Liveness follows a mark-and-sweep cycle driven by discovery rounds: at the
beginning of a round all records are marked stale, every beacon received
during the round marks its sender fresh, and the sweep at the end of the
round removes whatever stayed stale. A neighbor therefore survives a round
only if it was heard from during that round.
*/

package core

import (
	"errors"
	"sync"
)

// Address identifies a remote node. It is opaque to this package; the host
// network layer decides the encoding. Only equality is assumed.
type Address string

var (
	// ErrNotFound is returned by lookups when the address is not in the table.
	ErrNotFound = errors.New("address not in table")

	// ErrEmptyTable is returned by selection when there are no neighbors at all.
	ErrEmptyTable = errors.New("neighbor table is empty")

	// ErrNoMatch is returned by selection when no tier matches any neighbor.
	ErrNoMatch = errors.New("no neighbor matches any competence tier")
)

// Liveness states of a neighbor record. A record is created fresh, marked
// stale when a round begins and removed by the sweep if still stale.
const (
	livenessFresh = iota // heard from during the current round
	livenessStale        // not yet heard from during the current round
)

// NeighborRecord stores information about a single node in the vicinity.
type NeighborRecord struct {
	Address    Address  // Unique key.
	Competence string   // Category tag, e.g. "doctor".
	Interests  []string // Interest tags.
	Trust      float64  // Caller-supplied trust score.

	liveness int
}

// NeighborTable owns the neighbor records of one node. Records are keyed by
// address. Insertion order is kept separately because neighbor selection
// breaks trust ties on it.
type NeighborTable struct {
	records map[Address]*NeighborRecord
	order   []Address
	sync.RWMutex
}

// NewNeighborTable creates an empty, properly initialized neighbor table.
func NewNeighborTable() *NeighborTable {
	return &NeighborTable{
		records: make(map[Address]*NeighborRecord),
	}
}

// Register adds a node to the neighbor table with fresh liveness.
// Re-registering a known address is an upsert: the record data is replaced
// and the liveness refreshed, while the original insertion position is kept.
func (table *NeighborTable) Register(ip Address, competence string, interests []string, trust float64) {
	table.Lock()
	defer table.Unlock()

	record, ok := table.records[ip]
	if !ok {
		record = &NeighborRecord{Address: ip}
		table.records[ip] = record
		table.order = append(table.order, ip)
	}

	record.Competence = competence
	record.Interests = append([]string(nil), interests...)
	record.Trust = trust
	record.liveness = livenessFresh
}

// Unregister removes the record for the address. Unknown addresses are a no-op.
func (table *NeighborTable) Unregister(ip Address) {
	table.Lock()
	defer table.Unlock()

	if _, ok := table.records[ip]; !ok {
		return
	}

	delete(table.records, ip)
	table.removeFromOrder(ip)
}

// MarkAllDown marks every neighbor stale. Called once when a discovery round
// begins, before any beacon of that round is processed.
func (table *NeighborTable) MarkAllDown() {
	table.Lock()
	defer table.Unlock()

	for _, record := range table.records {
		record.liveness = livenessStale
	}
}

// MarkUp marks the neighbor fresh. Called whenever a beacon is observed from
// the address during the round. Unknown addresses are a no-op; observing a
// beacon does not implicitly register the sender.
func (table *NeighborTable) MarkUp(ip Address) {
	table.Lock()
	defer table.Unlock()

	if record, ok := table.records[ip]; ok {
		record.liveness = livenessFresh
	}
}

// PruneDead removes every neighbor that stayed stale and returns the removed
// addresses in insertion order. Called once when a discovery round ends,
// after all beacons of that round have been processed.
func (table *NeighborTable) PruneDead() (removed []Address) {
	table.Lock()
	defer table.Unlock()

	remaining := table.order[:0]
	for _, ip := range table.order {
		if table.records[ip].liveness == livenessStale {
			delete(table.records, ip)
			removed = append(removed, ip)
			continue
		}
		remaining = append(remaining, ip)
	}
	table.order = remaining

	return removed
}

// IsEmpty indicates whether the table holds no neighbors.
func (table *NeighborTable) IsEmpty() bool {
	return table.Count() == 0
}

// Count returns the current number of neighbors.
func (table *NeighborTable) Count() int {
	table.RLock()
	defer table.RUnlock()

	return len(table.records)
}

// Contains indicates whether the address is currently a neighbor.
func (table *NeighborTable) Contains(ip Address) bool {
	table.RLock()
	defer table.RUnlock()

	_, ok := table.records[ip]
	return ok
}

// ListAddresses returns all neighbor addresses in insertion order.
func (table *NeighborTable) ListAddresses() (ips []Address) {
	table.RLock()
	defer table.RUnlock()

	return append([]Address(nil), table.order...)
}

// IsAlive indicates whether the neighbor was heard from during the current round.
func (table *NeighborTable) IsAlive(ip Address) (alive bool, err error) {
	table.RLock()
	defer table.RUnlock()

	record, ok := table.records[ip]
	if !ok {
		return false, ErrNotFound
	}
	return record.liveness == livenessFresh, nil
}

// Trust returns the trust score of the neighbor.
func (table *NeighborTable) Trust(ip Address) (trust float64, err error) {
	table.RLock()
	defer table.RUnlock()

	record, ok := table.records[ip]
	if !ok {
		return 0, ErrNotFound
	}
	return record.Trust, nil
}

// Competence returns the competence tag of the neighbor.
func (table *NeighborTable) Competence(ip Address) (competence string, err error) {
	table.RLock()
	defer table.RUnlock()

	record, ok := table.records[ip]
	if !ok {
		return "", ErrNotFound
	}
	return record.Competence, nil
}

// Interests returns the interest tags of the neighbor.
func (table *NeighborTable) Interests(ip Address) (interests []string, err error) {
	table.RLock()
	defer table.RUnlock()

	record, ok := table.records[ip]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]string(nil), record.Interests...), nil
}

// ListRecords returns a snapshot of all neighbor records in insertion order.
func (table *NeighborTable) ListRecords() (records []NeighborRecord) {
	table.RLock()
	defer table.RUnlock()

	for _, ip := range table.order {
		record := *table.records[ip]
		record.Interests = append([]string(nil), record.Interests...)
		records = append(records, record)
	}

	return records
}

// removeFromOrder deletes the address from the insertion order. Caller must hold the lock.
func (table *NeighborTable) removeFromOrder(ip Address) {
	for i, known := range table.order {
		if known == ip {
			table.order = append(table.order[:i], table.order[i+1:]...)
			return
		}
	}
}
