/*
File Name:  Discovery.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Discovery rounds implement the hello-protocol style expiry of neighbors.
A round begins by marking every neighbor stale; beacons received during the
round mark their senders fresh (see Dispatch.go); the sweep at the end of the
round removes neighbors that stayed stale.

BeginRound and EndRound are exported so an external scheduler, for example a
discrete-event simulation delivering one packet at a time, can drive the
round boundaries itself instead of relying on the wall-clock loop.
*/

package core

import (
	"time"
)

// defaultDiscoveryInterval is the time in seconds between discovery rounds if not configured.
const defaultDiscoveryInterval = 10

// BeginRound starts a discovery round by marking all neighbors stale.
func (backend *Backend) BeginRound() {
	backend.Neighbors.MarkAllDown()
}

// EndRound finishes a discovery round: neighbors not heard from during the
// round are removed and reported via the NeighborExpired filter.
func (backend *Backend) EndRound() {
	for _, ip := range backend.Neighbors.PruneDead() {
		backend.Filters.NeighborExpired(ip)
	}
}

// autoDiscoveryRounds drives periodic discovery rounds until shutdown.
func (backend *Backend) autoDiscoveryRounds() {
	interval := backend.Config.DiscoveryInterval
	if interval <= 0 {
		interval = defaultDiscoveryInterval
	}

	backend.BeginRound()

	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			backend.EndRound()
			backend.BeginRound()
		case <-backend.shutdown:
			return
		}
	}
}
