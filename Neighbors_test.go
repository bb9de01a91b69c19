/*
File Name:  Neighbors_test.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package core

import (
	"errors"
	"testing"
)

func TestNeighborRegisterRoundTrip(t *testing.T) {
	table := NewNeighborTable()
	table.Register("10.0.0.1", "doctor", []string{"cardiology", "triage"}, 0.8)

	competence, err := table.Competence("10.0.0.1")
	if err != nil {
		t.Fatalf("Competence: %v", err)
	}
	if competence != "doctor" {
		t.Fatalf("Competence = %q, want doctor", competence)
	}

	trust, err := table.Trust("10.0.0.1")
	if err != nil {
		t.Fatalf("Trust: %v", err)
	}
	if trust != 0.8 {
		t.Fatalf("Trust = %v, want 0.8", trust)
	}

	interests, err := table.Interests("10.0.0.1")
	if err != nil {
		t.Fatalf("Interests: %v", err)
	}
	if len(interests) != 2 || interests[0] != "cardiology" || interests[1] != "triage" {
		t.Fatalf("Interests = %v", interests)
	}

	alive, err := table.IsAlive("10.0.0.1")
	if err != nil {
		t.Fatalf("IsAlive: %v", err)
	}
	if !alive {
		t.Fatalf("newly registered neighbor must be alive")
	}
}

func TestNeighborCountDistinctKeys(t *testing.T) {
	table := NewNeighborTable()

	if !table.IsEmpty() || table.Count() != 0 {
		t.Fatalf("new table must be empty")
	}

	table.Register("a", "doctor", nil, 0.1)
	table.Register("b", "nurse", nil, 0.2)
	table.Register("a", "nurse", nil, 0.3) // re-registration, no new key

	if table.Count() != 2 {
		t.Fatalf("Count = %d, want 2", table.Count())
	}

	table.Unregister("a")
	table.Unregister("missing") // no-op

	if table.Count() != 1 {
		t.Fatalf("Count = %d, want 1", table.Count())
	}
	if table.Contains("a") || !table.Contains("b") {
		t.Fatalf("wrong keys after unregister")
	}
}

func TestNeighborUpsertKeepsOrder(t *testing.T) {
	table := NewNeighborTable()
	table.Register("a", "doctor", nil, 0.1)
	table.Register("b", "nurse", nil, 0.2)
	table.Register("a", "caregiver", []string{"companionship"}, 0.9)

	ips := table.ListAddresses()
	if len(ips) != 2 || ips[0] != "a" || ips[1] != "b" {
		t.Fatalf("ListAddresses = %v, want [a b]", ips)
	}

	competence, _ := table.Competence("a")
	trust, _ := table.Trust("a")
	if competence != "caregiver" || trust != 0.9 {
		t.Fatalf("upsert did not replace record data: %q %v", competence, trust)
	}
}

func TestNeighborLookupNotFound(t *testing.T) {
	table := NewNeighborTable()
	table.Register("a", "doctor", nil, 0.5)

	if _, err := table.Trust("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Trust on unknown address: %v, want ErrNotFound", err)
	}
	if _, err := table.Competence("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Competence on unknown address: %v, want ErrNotFound", err)
	}
	if _, err := table.Interests("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Interests on unknown address: %v, want ErrNotFound", err)
	}
	if _, err := table.IsAlive("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("IsAlive on unknown address: %v, want ErrNotFound", err)
	}
}

func TestNeighborMarkAndSweep(t *testing.T) {
	table := NewNeighborTable()
	table.Register("a", "doctor", nil, 0.5)
	table.Register("b", "nurse", nil, 0.6)
	table.Register("c", "caregiver", nil, 0.7)

	table.MarkAllDown()

	for _, ip := range []Address{"a", "b", "c"} {
		if alive, _ := table.IsAlive(ip); alive {
			t.Fatalf("%s alive after MarkAllDown", ip)
		}
	}

	table.MarkUp("b")
	table.MarkUp("ghost") // unknown, must not implicitly register

	if alive, _ := table.IsAlive("b"); !alive {
		t.Fatalf("b not alive after MarkUp")
	}
	if alive, _ := table.IsAlive("a"); alive {
		t.Fatalf("a alive without MarkUp")
	}
	if table.Contains("ghost") {
		t.Fatalf("MarkUp implicitly registered an unknown address")
	}

	removed := table.PruneDead()
	if len(removed) != 2 || removed[0] != "a" || removed[1] != "c" {
		t.Fatalf("PruneDead removed %v, want [a c]", removed)
	}
	if table.Count() != 1 || !table.Contains("b") {
		t.Fatalf("wrong survivors after PruneDead")
	}

	// surviving record keeps its fields
	if trust, _ := table.Trust("b"); trust != 0.6 {
		t.Fatalf("survivor trust changed: %v", trust)
	}

	// a second consecutive sweep is a no-op
	if removed := table.PruneDead(); len(removed) != 0 {
		t.Fatalf("second PruneDead removed %v, want nothing", removed)
	}
	if table.Count() != 1 {
		t.Fatalf("second PruneDead changed the table")
	}
}

func TestNeighborExpiryCycle(t *testing.T) {
	// A neighbor survives a round only if heard from during that round.
	table := NewNeighborTable()
	table.Register("a", "doctor", nil, 0.5)

	// round 1: heard from
	table.MarkAllDown()
	table.MarkUp("a")
	table.PruneDead()
	if !table.Contains("a") {
		t.Fatalf("a removed although heard from")
	}

	// round 2: silent
	table.MarkAllDown()
	table.PruneDead()
	if table.Contains("a") {
		t.Fatalf("a survived a silent round")
	}
}
