/*
File Name:  Dispatch.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Entry points for packets delivered by the host network layer, and the
delegation of critical data to the best suited neighbor. The wire format of
beacons and attending control packets belongs to the host; this core only
receives their decoded content.
*/

package core

import (
	"time"
)

// ReceiveBeacon processes a discovery beacon heard from a nearby node.
// Known senders are marked fresh for the current round; unknown senders are
// registered as new neighbors and reported via the NeighborUp filter.
// The observed trust is remembered in the trust store, and a returning
// neighbor is seeded from its remembered record: the higher of the remembered
// and the claimed trust wins, and a blank competence falls back to the
// remembered one.
func (backend *Backend) ReceiveBeacon(ip Address, competence string, interests []string, trust float64) {
	if backend.Neighbors.Contains(ip) {
		backend.Neighbors.MarkUp(ip)
		return
	}

	if rememberedCompetence, rememberedTrust, found := backend.TrustDB.Lookup(ip); found {
		if rememberedTrust > trust {
			trust = rememberedTrust
		}
		if competence == "" {
			competence = rememberedCompetence
		}
	}

	backend.Neighbors.Register(ip, competence, interests, trust)
	backend.TrustDB.Remember(ip, competence, trust)

	backend.Filters.NeighborUp(ip, NeighborRecord{Address: ip, Competence: competence, Interests: interests, Trust: trust})
}

// RemoveNeighbor explicitly unregisters a neighbor, for example after the
// host learned the node left the network. Unknown addresses are a no-op.
func (backend *Backend) RemoveNeighbor(ip Address) {
	if !backend.Neighbors.Contains(ip) {
		return
	}

	backend.Neighbors.Unregister(ip)
	backend.Filters.NeighborDown(ip)
}

// ReceiveAttendingRequest processes an attending call control packet.
// The timestamp is the host's current time, simulated or wall-clock.
func (backend *Backend) ReceiveAttendingRequest(ip Address, criticalData string, priority int, timestamp time.Time) {
	backend.Attending.RegisterCall(ip, criticalData, priority, timestamp)
	backend.Filters.CallRegistered(CallRecord{Address: ip, CriticalData: criticalData, Priority: priority, Timestamp: timestamp})
}

// ReceiveAttendingClose processes the closure of an attending call.
func (backend *Backend) ReceiveAttendingClose(ip Address) {
	backend.Attending.CloseCall(ip)
	backend.Filters.CallClosed(ip)
}

// DelegateCritical picks the neighbor best suited to receive this node's
// critical data, using the configured competence tiers, and returns the
// information class to hand out based on the chosen neighbor's competence.
// Returns ErrEmptyTable when no neighbor is around and ErrNoMatch when no
// tier matches any neighbor.
func (backend *Backend) DelegateCritical() (ip Address, payload string, err error) {
	ip, err = backend.Neighbors.SelectByTiers(backend.Config.CompetenceTiers)
	if err != nil {
		return "", "", err
	}

	competence, err := backend.Neighbors.Competence(ip)
	if err != nil {
		return "", "", err
	}

	return ip, CriticalInfo(competence), nil
}
