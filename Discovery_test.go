/*
File Name:  Discovery_test.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package core

import (
	"testing"
)

func TestRoundBoundaries(t *testing.T) {
	backend := newTestBackend()

	var expired []Address
	backend.Filters.NeighborExpired = func(ip Address) {
		expired = append(expired, ip)
	}

	backend.ReceiveBeacon("a", "doctor", nil, 0.5)
	backend.ReceiveBeacon("b", "nurse", nil, 0.6)

	backend.BeginRound()
	backend.ReceiveBeacon("b", "nurse", nil, 0.6) // only b beacons this round
	backend.EndRound()

	if backend.Neighbors.Contains("a") {
		t.Fatalf("a survived a silent round")
	}
	if !backend.Neighbors.Contains("b") {
		t.Fatalf("b removed although heard from")
	}
	if len(expired) != 1 || expired[0] != "a" {
		t.Fatalf("NeighborExpired events = %v, want [a]", expired)
	}
}

func TestEndRoundWithoutNeighbors(t *testing.T) {
	backend := newTestBackend()

	backend.BeginRound()
	backend.EndRound() // must not fire any event or panic

	if backend.Neighbors.Count() != 0 {
		t.Fatalf("empty round changed the table")
	}
}
