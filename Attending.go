/*
File Name:  Attending.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Attending calls are pending requests for attention directed at this node,
keyed by the requesting peer's address. The list only bookkeeps; no ordering
or priority-based dequeue is implied. Callers consult records by address and
close them when the request was served.
*/

package core

import (
	"sync"
	"time"
)

// CallRecord stores one pending attending call.
type CallRecord struct {
	Address      Address   // The peer requesting attention. Unique key.
	CriticalData string    // Opaque payload carried by the call.
	Priority     int       // Urgency rank. Callers use 1 as most urgent.
	Timestamp    time.Time // When the call was received. Stored, not interpreted.
}

// AttendingList owns the pending attending calls of one node.
type AttendingList struct {
	records map[Address]*CallRecord
	order   []Address
	sync.RWMutex
}

// NewAttendingList creates an empty, properly initialized attending list.
func NewAttendingList() *AttendingList {
	return &AttendingList{
		records: make(map[Address]*CallRecord),
	}
}

// RegisterCall adds a pending call. Re-registering a known address is an
// upsert: the record data is replaced and the insertion position kept.
func (list *AttendingList) RegisterCall(ip Address, criticalData string, priority int, timestamp time.Time) {
	list.Lock()
	defer list.Unlock()

	record, ok := list.records[ip]
	if !ok {
		record = &CallRecord{Address: ip}
		list.records[ip] = record
		list.order = append(list.order, ip)
	}

	record.CriticalData = criticalData
	record.Priority = priority
	record.Timestamp = timestamp
}

// CloseCall removes the pending call for the address. Unknown addresses are a no-op.
func (list *AttendingList) CloseCall(ip Address) {
	list.Lock()
	defer list.Unlock()

	if _, ok := list.records[ip]; !ok {
		return
	}

	delete(list.records, ip)
	for i, known := range list.order {
		if known == ip {
			list.order = append(list.order[:i], list.order[i+1:]...)
			break
		}
	}
}

// Count returns the current number of pending calls.
func (list *AttendingList) Count() int {
	list.RLock()
	defer list.RUnlock()

	return len(list.records)
}

// ListAddresses returns all pending call addresses in insertion order.
func (list *AttendingList) ListAddresses() (ips []Address) {
	list.RLock()
	defer list.RUnlock()

	return append([]Address(nil), list.order...)
}

// CriticalData returns the payload of the pending call.
func (list *AttendingList) CriticalData(ip Address) (criticalData string, err error) {
	list.RLock()
	defer list.RUnlock()

	record, ok := list.records[ip]
	if !ok {
		return "", ErrNotFound
	}
	return record.CriticalData, nil
}

// Priority returns the urgency rank of the pending call.
func (list *AttendingList) Priority(ip Address) (priority int, err error) {
	list.RLock()
	defer list.RUnlock()

	record, ok := list.records[ip]
	if !ok {
		return 0, ErrNotFound
	}
	return record.Priority, nil
}

// Timestamp returns the receive time of the pending call.
func (list *AttendingList) Timestamp(ip Address) (timestamp time.Time, err error) {
	list.RLock()
	defer list.RUnlock()

	record, ok := list.records[ip]
	if !ok {
		return time.Time{}, ErrNotFound
	}
	return record.Timestamp, nil
}

// ListRecords returns a snapshot of all pending calls in insertion order.
func (list *AttendingList) ListRecords() (records []CallRecord) {
	list.RLock()
	defer list.RUnlock()

	for _, ip := range list.order {
		records = append(records, *list.records[ip])
	}

	return records
}
