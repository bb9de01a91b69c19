/*
File Name:  Dispatch_test.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package core

import (
	"errors"
	"testing"
	"time"

	"github.com/vicinet/core/store"
)

// newTestBackend creates a backend without touching the file system.
func newTestBackend() *Backend {
	backend := &Backend{
		Config:    &Config{CompetenceTiers: []string{"doctor", "nurse", "caregiver"}},
		Neighbors: NewNeighborTable(),
		Attending: NewAttendingList(),
		Profile:   NewProfile("caregiver", nil),
		TrustDB:   &TrustStore{Database: store.NewMemoryStore()},
		shutdown:  make(chan struct{}),
	}
	backend.initFilters()
	return backend
}

func TestReceiveBeaconRegistersOnce(t *testing.T) {
	backend := newTestBackend()

	var upEvents []Address
	backend.Filters.NeighborUp = func(ip Address, record NeighborRecord) {
		upEvents = append(upEvents, ip)
	}

	backend.ReceiveBeacon("a", "doctor", nil, 0.8)
	backend.Neighbors.MarkAllDown()
	backend.ReceiveBeacon("a", "doctor", nil, 0.8) // known sender, mark up only

	if len(upEvents) != 1 || upEvents[0] != "a" {
		t.Fatalf("NeighborUp events = %v, want [a]", upEvents)
	}
	if backend.Neighbors.Count() != 1 {
		t.Fatalf("Count = %d, want 1", backend.Neighbors.Count())
	}
	if alive, _ := backend.Neighbors.IsAlive("a"); !alive {
		t.Fatalf("beacon from known sender did not mark it fresh")
	}

	// trust is remembered for re-encounters
	competence, trust, found := backend.TrustDB.Lookup("a")
	if !found || competence != "doctor" || trust != 0.8 {
		t.Fatalf("trust store: %q %v %v", competence, trust, found)
	}
}

func TestReceiveBeaconSeedsFromTrustStore(t *testing.T) {
	backend := newTestBackend()

	backend.ReceiveBeacon("a", "doctor", nil, 0.9)

	// expire the neighbor in a round with no beacon from it
	backend.BeginRound()
	backend.EndRound()

	if backend.Neighbors.Contains("a") {
		t.Fatalf("neighbor survived a silent round")
	}

	// the re-entering neighbor claims nothing and starts from the remembered record
	backend.ReceiveBeacon("a", "", nil, 0)

	trust, err := backend.Neighbors.Trust("a")
	if err != nil || trust != 0.9 {
		t.Fatalf("trust after re-registration = %v %v, want 0.9", trust, err)
	}
	competence, err := backend.Neighbors.Competence("a")
	if err != nil || competence != "doctor" {
		t.Fatalf("competence after re-registration = %q %v, want doctor", competence, err)
	}

	// a higher claimed trust overrides the remembered one
	backend.RemoveNeighbor("a")
	backend.ReceiveBeacon("a", "nurse", nil, 0.95)

	if trust, _ := backend.Neighbors.Trust("a"); trust != 0.95 {
		t.Fatalf("trust = %v, want claimed 0.95 over remembered 0.9", trust)
	}
	if competence, _, _ := backend.TrustDB.Lookup("a"); competence != "nurse" {
		t.Fatalf("remembered competence = %q, want nurse", competence)
	}
}

func TestRemoveNeighbor(t *testing.T) {
	backend := newTestBackend()

	var downEvents []Address
	backend.Filters.NeighborDown = func(ip Address) {
		downEvents = append(downEvents, ip)
	}

	backend.ReceiveBeacon("a", "nurse", nil, 0.5)
	backend.RemoveNeighbor("a")
	backend.RemoveNeighbor("ghost") // no-op, no event

	if backend.Neighbors.Count() != 0 {
		t.Fatalf("neighbor not removed")
	}
	if len(downEvents) != 1 || downEvents[0] != "a" {
		t.Fatalf("NeighborDown events = %v, want [a]", downEvents)
	}
}

func TestReceiveAttending(t *testing.T) {
	backend := newTestBackend()

	var registered []CallRecord
	var closed []Address
	backend.Filters.CallRegistered = func(record CallRecord) { registered = append(registered, record) }
	backend.Filters.CallClosed = func(ip Address) { closed = append(closed, ip) }

	now := time.Now()
	backend.ReceiveAttendingRequest("peer1", "data", 1, now)

	if backend.Attending.Count() != 1 {
		t.Fatalf("call not registered")
	}
	if len(registered) != 1 || registered[0].Address != "peer1" || registered[0].Priority != 1 {
		t.Fatalf("CallRegistered events = %v", registered)
	}

	backend.ReceiveAttendingClose("peer1")

	if backend.Attending.Count() != 0 {
		t.Fatalf("call not closed")
	}
	if len(closed) != 1 || closed[0] != "peer1" {
		t.Fatalf("CallClosed events = %v", closed)
	}
}

func TestDelegateCritical(t *testing.T) {
	backend := newTestBackend()

	if _, _, err := backend.DelegateCritical(); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("DelegateCritical on empty vicinity = %v, want ErrEmptyTable", err)
	}

	backend.ReceiveBeacon("n1", "nurse", nil, 0.7)
	backend.ReceiveBeacon("n2", "doctor", nil, 0.5)

	ip, payload, err := backend.DelegateCritical()
	if err != nil {
		t.Fatalf("DelegateCritical: %v", err)
	}
	if ip != "n2" {
		t.Fatalf("delegated to %s, want n2 (doctor tier has priority)", ip)
	}
	if payload != "InfoA" {
		t.Fatalf("payload = %q, want InfoA for a doctor", payload)
	}
}

func TestDelegateCriticalNoMatch(t *testing.T) {
	backend := newTestBackend()
	backend.ReceiveBeacon("b1", "bystander", nil, 0.9)

	if _, _, err := backend.DelegateCritical(); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("DelegateCritical = %v, want ErrNoMatch", err)
	}
}
