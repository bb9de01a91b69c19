/*
File Name:  Trust Store.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

The trust store remembers the last observed trust and competence per address
so that a node re-entering the vicinity starts from its remembered score
instead of a blank one. Backed by the key-value store; persistent on disk if
a database folder is configured, otherwise in memory only.
*/

package core

import (
	"encoding/json"

	"github.com/vicinet/core/store"
)

// TrustStore remembers observed trust per address.
type TrustStore struct {
	Database store.Store // The key-value store holding the trust records.
}

// trustRecord is the stored value, JSON encoded.
type trustRecord struct {
	Competence string  `json:"competence"`
	Trust      float64 `json:"trust"`
}

func (backend *Backend) initTrustStore() (status int, err error) {
	if backend.Config.TrustDatabase == "" {
		backend.TrustDB = &TrustStore{Database: store.NewMemoryStore()}
		return ExitSuccess, nil
	}

	db, err := store.NewPogrebStore(backend.Config.TrustDatabase)
	if err != nil {
		return ExitTrustDBInit, err
	}

	backend.TrustDB = &TrustStore{Database: db}
	return ExitSuccess, nil
}

// Remember stores the observed trust and competence for the address.
func (trustDB *TrustStore) Remember(ip Address, competence string, trust float64) {
	data, err := json.Marshal(trustRecord{Competence: competence, Trust: trust})
	if err != nil {
		return
	}

	trustDB.Database.Store(hashData([]byte(ip)), data)
}

// Lookup returns the remembered trust and competence for the address.
func (trustDB *TrustStore) Lookup(ip Address) (competence string, trust float64, found bool) {
	data, found := trustDB.Database.Retrieve(hashData([]byte(ip)))
	if !found {
		return "", 0, false
	}

	var record trustRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", 0, false
	}

	return record.Competence, record.Trust, true
}

// Forget removes the remembered trust for the address.
func (trustDB *TrustStore) Forget(ip Address) {
	trustDB.Database.Delete(hashData([]byte(ip)))
}

// Close releases the underlying database.
func (trustDB *TrustStore) Close() {
	trustDB.Database.Close()
}
