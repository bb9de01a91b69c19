/*
File Name:  Vicinet.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Vicinet is the per-node core of a proximity care network: it keeps track of
which nodes are currently in the vicinity, remembers how much they are
trusted, decides which neighbor is best suited to receive critical data, and
bookkeeps pending attending calls directed at this node.
*/

package core

import (
	"github.com/btcsuite/btcd/btcec"
)

// Backend is the full instance of one node. Multiple backends may live in the
// same process, for example when a simulation drives many nodes; they share
// no state.
type Backend struct {
	Config    *Config        // Config file settings.
	Filters   Filters        // Filter functions must be set before Init.
	Profile   *Profile       // This node's own role.
	Neighbors *NeighborTable // Nodes currently in the vicinity.
	Attending *AttendingList // Pending attending calls directed at this node.
	TrustDB   *TrustStore    // Remembered trust per address. Survives restarts if configured.

	peerPrivateKey *btcec.PrivateKey
	peerPublicKey  *btcec.PublicKey
	nodeAddress    Address

	shutdown chan struct{}
}

// Init initializes the node. The config must be loaded first via LoadConfig.
// Status: see the Exit codes in Exit.go.
func Init(config *Config) (backend *Backend, status int, err error) {
	backend = &Backend{
		Config:    config,
		Neighbors: NewNeighborTable(),
		Attending: NewAttendingList(),
		Profile:   NewProfile(config.Competence, config.Interests),
		shutdown:  make(chan struct{}),
	}
	backend.Profile.SetServicePriority(config.ServicePriority)

	backend.initFilters()

	if status, err = backend.initNodeID(); err != nil {
		return nil, status, err
	}
	if status, err = backend.initTrustStore(); err != nil {
		return nil, status, err
	}

	return backend, ExitSuccess, nil
}

// Connect starts the periodic discovery rounds.
func (backend *Backend) Connect() {
	go backend.autoDiscoveryRounds()
}

// Close shuts the node down gracefully and releases the trust database.
func (backend *Backend) Close() {
	close(backend.shutdown)
	backend.TrustDB.Close()
}
